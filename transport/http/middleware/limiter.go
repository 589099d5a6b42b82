package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"forest/shared"
	"forest/shared/cache"
	"forest/shared/constant"
	"forest/transport/http/response"
)

const (
	cacheKeyRateLimit = "limiter"
)

// RateLimit counts requests per client address and user agent in fixed redis windows.
// Cache failures let the request through.
func (a *appMiddleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !a.config.App.RateLimiter.Enable {
			next.ServeHTTP(writer, request)

			return
		}

		maxReqs := a.config.App.RateLimiter.MaxRequests
		windowSecs := a.config.App.RateLimiter.WindowSeconds
		cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, shared.ClientIP(request), userAgent(request))

		var count int

		err := a.cache.Get(request.Context(), cacheKey, &count)

		switch {
		case errors.Is(err, cache.Nil):
			count = 1
		case err != nil:
			next.ServeHTTP(writer, request)

			return
		default:
			count++
		}

		if count > maxReqs {
			response.WithRequestLimitExceeded(writer)

			return
		}

		if err = a.cache.Save(request.Context(), cacheKey, count, windowSecs); err != nil {
			next.ServeHTTP(writer, request)

			return
		}

		writer.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
		writer.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
		writer.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

		next.ServeHTTP(writer, request)
	})
}

func userAgent(request *http.Request) string {
	ua := request.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}
