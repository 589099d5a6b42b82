package model

import "forest/shared/model"

const (
	TableName  = "product_files"
	EntityName = "product_file"
	Directory  = "products"

	FieldID        = "id"
	FieldProductID = "product_id"
	FieldURL       = "url"
	FieldIsPrimary = "is_primary"
)

type ProductFile struct {
	ID        string `db:"id"`
	ProductID string `db:"product_id"`
	URL       string `db:"url"`
	IsPrimary bool   `db:"is_primary"`
	model.Metadata
}
