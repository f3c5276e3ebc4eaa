package helpers

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v3"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxOffset bounds page*limit so the offset never overflows.
	MaxOffset    = math.MaxInt32
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PageMeta   `json:"meta,omitempty"`
}

type PageMeta struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func RespCreated(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func RespPaginated(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, page Page, total int64) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Data:    data,
		Meta:    &PageMeta{Page: page.Number, PerPage: page.Limit, Total: total},
	})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	code := errors.StatusCode(err)
	message := err.Error()
	if _, ok := err.(*errors.ErrorResponse); !ok {
		log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("unhandled error: %v", err))
		message = "internal server error"
	}

	return ctx.Status(code).JSON(Response{
		Success: false,
		Message: message,
	})
}

// Page is an offset/limit window. Offsets are not stable across concurrent
// inserts.
type Page struct {
	Number int
	Limit  int
	Offset int
}

func ParsePage(ctx *fiber.Ctx) Page {
	limit, err := strconv.Atoi(ctx.Query("limit"))
	if err != nil || limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	page, err := strconv.Atoi(ctx.Query("page"))
	if err != nil || page <= 0 {
		page = 1
	}
	if page > MaxOffset/limit {
		page = MaxOffset / limit
	}

	return Page{Number: page, Limit: limit, Offset: (page - 1) * limit}
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and collapses every run of non-alphanumerics into a
// single dash.
func Slugify(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

func GenerateID() string {
	return uuid.NewString()
}

// GenerateBookingNumber returns BK-YYYYMMDD-XXXXXX.
func GenerateBookingNumber(now time.Time) string {
	suffix := strings.ToUpper(shortuuid.New())
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return fmt.Sprintf("BK-%s-%s", now.Format("20060102"), suffix)
}

func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func UserID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals("user_id").(string)
	return id
}

func UserRole(ctx *fiber.Ctx) string {
	role, _ := ctx.Locals("role").(string)
	return role
}

// ReadFiles loads every multipart file sent under field.
func ReadFiles(ctx *fiber.Ctx, field string) ([]storage.File, error) {
	form, err := ctx.MultipartForm()
	if err != nil {
		return nil, errors.BadRequest("error parse multipart form")
	}

	headers := form.File[field]
	if len(headers) == 0 {
		return nil, errors.BadRequest(fmt.Sprintf("no files under %q", field))
	}

	files := make([]storage.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, errors.BadRequest(fmt.Sprintf("error open file %s", fh.Filename))
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, errors.BadRequest(fmt.Sprintf("error read file %s", fh.Filename))
		}
		files = append(files, storage.File{Filename: fh.Filename, Data: data})
	}
	return files, nil
}
