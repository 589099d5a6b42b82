package service_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"forest/config"
	otelMocks "forest/infras/otel/mocks"
	postgresMocks "forest/infras/postgres/mocks"
	s3Mocks "forest/infras/s3/mocks"
	productMocks "forest/internal/domains/product/mocks"
	fileMocks "forest/internal/domains/productfile/mocks"
	"forest/internal/domains/productfile/model"
	"forest/internal/domains/productfile/model/dto"
	"forest/internal/domains/productfile/service"
	cacheMocks "forest/shared/cache/mocks"
	"forest/shared/failure"
)

type fixture struct {
	repo        *fileMocks.MockProductFile
	productRepo *productMocks.MockProduct
	s3          *s3Mocks.MockS3
	svc         service.ProductFile
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := fixture{
		repo:        fileMocks.NewMockProductFile(ctrl),
		productRepo: productMocks.NewMockProduct(ctrl),
		s3:          s3Mocks.NewMockS3(ctrl),
	}

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.productRepo, postgresMocks.NewTransaction(), &config.Config{}, mockCache, otelMocks.NewOtel(), f.s3)

	return f
}

// fileHeader builds a header the way net/http hands it to a handler.
func fileHeader(t *testing.T, name, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="files"; filename="`+name+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)

	return form.File["files"][0]
}

func TestProductFileService_Upload(t *testing.T) {
	f := newFixture(t)

	req := dto.UploadFilesRequest{Files: []*multipart.FileHeader{
		fileHeader(t, "a.png", "image/png", []byte("first")),
		fileHeader(t, "b.jpg", "image/jpeg", []byte("second")),
	}}

	t.Run("first file becomes primary when none exists", func(t *testing.T) {
		f.productRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.s3.EXPECT().Upload(gomock.Any(), model.Directory, gomock.Any(), "image/png", gomock.Any(), int64(5)).Return("https://cdn/a.png", nil)
		f.s3.EXPECT().Upload(gomock.Any(), model.Directory, gomock.Any(), "image/jpeg", gomock.Any(), int64(6)).Return("https://cdn/b.jpg", nil)
		f.repo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)

		res, err := f.svc.Upload(context.Background(), "sauna", req)

		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.True(t, res[0].IsPrimary)
		assert.False(t, res[1].IsPrimary)
		assert.Equal(t, "https://cdn/b.jpg", res[1].URL)
	})

	t.Run("existing primary is kept", func(t *testing.T) {
		f.productRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.s3.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn/x.png", nil).Times(2)
		f.repo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)

		res, err := f.svc.Upload(context.Background(), "sauna", req)

		require.NoError(t, err)
		assert.False(t, res[0].IsPrimary)
	})

	t.Run("storage error", func(t *testing.T) {
		f.productRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.s3.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("s3 down"))

		_, err := f.svc.Upload(context.Background(), "sauna", req)

		assert.Error(t, err)
	})

	t.Run("product not found", func(t *testing.T) {
		f.productRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Upload(context.Background(), "missing", req)

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

func TestProductFileService_DeleteIDs(t *testing.T) {
	f := newFixture(t)

	t.Run("deleting the primary promotes the oldest remaining file", func(t *testing.T) {
		f.productRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
			Return([]model.ProductFile{{ID: "file-1", ProductID: "sauna", URL: "https://cdn/a.png", IsPrimary: true}}, nil)
		f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
		f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
			Return([]model.ProductFile{{ID: "file-2", ProductID: "sauna"}}, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, fields map[string]any, _ any) error {
				assert.Equal(t, true, fields[model.FieldIsPrimary])

				return nil
			})
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
		f.s3.EXPECT().Delete(gomock.Any(), "https://cdn/a.png").Return(nil).AnyTimes()

		err := f.svc.DeleteIDs(context.Background(), "sauna", dto.DeleteFilesRequest{FilesIDs: []string{"file-1"}})

		assert.NoError(t, err)
	})

	t.Run("nothing matched", func(t *testing.T) {
		f.productRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil, nil)

		err := f.svc.DeleteIDs(context.Background(), "sauna", dto.DeleteFilesRequest{FilesIDs: []string{"file-9"}})

		assert.NoError(t, err)
	})
}

func TestProductFileService_SetPrimary(t *testing.T) {
	f := newFixture(t)

	t.Run("unsets the current primary first", func(t *testing.T) {
		gomock.InOrder(
			f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(true, nil),
			f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ any, fields map[string]any, _ any) error {
					assert.Equal(t, false, fields[model.FieldIsPrimary])

					return nil
				}),
			f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ any, fields map[string]any, _ any) error {
					assert.Equal(t, true, fields[model.FieldIsPrimary])

					return nil
				}),
		)

		assert.NoError(t, f.svc.SetPrimary(context.Background(), "sauna", "file-2"))
	})

	t.Run("unknown file", func(t *testing.T) {
		f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(false, nil)

		err := f.svc.SetPrimary(context.Background(), "sauna", "file-9")

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

func TestProductFileService_Replace(t *testing.T) {
	f := newFixture(t)

	req := dto.ReplaceFileRequest{File: fileHeader(t, "c.webp", "image/webp", []byte("third"))}

	t.Run("uploads the new blob and releases the old one", func(t *testing.T) {
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ProductFile{ID: "file-1", ProductID: "sauna", URL: "https://cdn/a.png"}, nil)
		f.s3.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), "image/webp", gomock.Any(), gomock.Any()).Return("https://cdn/c.webp", nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().GetTx(gomock.Any(), gomock.Nil(), gomock.Any()).
			Return(model.ProductFile{ID: "file-1", ProductID: "sauna", URL: "https://cdn/c.webp"}, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
		f.s3.EXPECT().Delete(gomock.Any(), "https://cdn/a.png").Return(nil).AnyTimes()

		res, err := f.svc.Replace(context.Background(), "sauna", "file-1", req)

		require.NoError(t, err)
		assert.Equal(t, "https://cdn/c.webp", res.URL)
	})

	t.Run("unknown file", func(t *testing.T) {
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ProductFile{}, nil)

		_, err := f.svc.Replace(context.Background(), "sauna", "file-9", req)

		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

func TestProductFileService_ReleaseBlobs(t *testing.T) {
	tests := []struct {
		name      string
		urls      []string
		setupMock func(f fixture)
		wantErr   bool
	}{
		{
			name: "duplicates are released once",
			urls: []string{"https://cdn/a.png", "https://cdn/a.png"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.s3.EXPECT().Delete(gomock.Any(), "https://cdn/a.png").Return(nil)
			},
		},
		{
			name: "blob still referenced by another product",
			urls: []string{"https://cdn/a.png"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
		},
		{
			name: "storage error is reported after trying every blob",
			urls: []string{"https://cdn/a.png", "https://cdn/b.png"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
				f.s3.EXPECT().Delete(gomock.Any(), "https://cdn/a.png").Return(errors.New("s3 down"))
				f.s3.EXPECT().Delete(gomock.Any(), "https://cdn/b.png").Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.ReleaseBlobs(context.Background(), tt.urls)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
