package controllers

import (
	"net/url"
	"strconv"

	"github.com/Kariqs/foodgram-api/config"
	"github.com/gin-gonic/gin"
)

const maxPageSize = 100

type page struct {
	number int
	limit  int
}

func (p page) offset() int {
	return (p.number - 1) * p.limit
}

func parsePage(ctx *gin.Context) page {
	number, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || number < 1 {
		number = 1
	}
	limit, err := strconv.Atoi(ctx.Query("limit"))
	if err != nil || limit < 1 {
		limit = config.AppConfig.PageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page{number: number, limit: limit}
}

// paginated mirrors the {count, next, previous, results} envelope the
// frontend expects.
func paginated(ctx *gin.Context, p page, count int64, results any) gin.H {
	var next, previous any
	if int64(p.number*p.limit) < count {
		next = pageURL(ctx, p.number+1)
	}
	if p.number > 1 {
		previous = pageURL(ctx, p.number-1)
	}
	return gin.H{
		"count":    count,
		"next":     next,
		"previous": previous,
		"results":  results,
	}
}

func pageURL(ctx *gin.Context, number int) string {
	u := url.URL{
		Scheme: requestScheme(ctx),
		Host:   ctx.Request.Host,
		Path:   ctx.Request.URL.Path,
	}
	query := ctx.Request.URL.Query()
	query.Set("page", strconv.Itoa(number))
	u.RawQuery = query.Encode()
	return u.String()
}

func requestScheme(ctx *gin.Context) string {
	if proto := ctx.GetHeader("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if ctx.Request.TLS != nil {
		return "https"
	}
	return "http"
}

func requestBaseURL(ctx *gin.Context) string {
	return requestScheme(ctx) + "://" + ctx.Request.Host
}

func parseID(ctx *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
