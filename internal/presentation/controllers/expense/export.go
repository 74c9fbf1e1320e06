package expense

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"github.com/trackify/trackify-backend/internal/domain/export"
	"github.com/trackify/trackify-backend/internal/domain/models"
	"github.com/trackify/trackify-backend/internal/domain/usecase"
	"github.com/trackify/trackify-backend/internal/infra/db/mongodb/repositories/export_cache_repository"
	"github.com/trackify/trackify-backend/internal/presentation/helpers"
	presentationProtocols "github.com/trackify/trackify-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	formatCSV  = "csv"
	formatXLSX = "xlsx"

	csvContentType  = "text/csv"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ExportExpensesController struct {
	FindExpensesByUserIdRepository usecase.FindExpensesByUserIdRepository

	// RedisURL enables staging generated exports; empty disables the cache.
	RedisURL string
}

func NewExportExpensesController(findExpensesByUserIdRepository usecase.FindExpensesByUserIdRepository, redisURL string) *ExportExpensesController {
	return &ExportExpensesController{
		FindExpensesByUserIdRepository: findExpensesByUserIdRepository,
		RedisURL:                       redisURL,
	}
}

func (c *ExportExpensesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserIdFromRequest(r)
	if errResponse != nil {
		return errResponse
	}

	format := r.UrlParams.Get("format")
	if format == "" {
		format = formatCSV
	}
	if format != formatCSV && format != formatXLSX {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "unsupported export format",
		}, http.StatusBadRequest)
	}

	now := time.Now()
	contentType := csvContentType
	if format == formatXLSX {
		contentType = xlsxContentType
	}
	filename := export.Filename(format, now)

	if staged := c.findStaged(userId, now, format); staged != nil {
		return helpers.CreateFileResponse(staged, contentType, filename)
	}

	expenses, err := c.FindExpensesByUserIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error fetching expenses",
		}, http.StatusInternalServerError)
	}

	data, errResponse := c.render(format, expenses)
	if errResponse != nil {
		return errResponse
	}

	c.stage(userId, now, format, data)

	return helpers.CreateFileResponse(data, contentType, filename)
}

func (c *ExportExpensesController) render(format string, expenses []models.Expense) ([]byte, *presentationProtocols.HttpResponse) {
	if format == formatCSV {
		return export.CSV(expenses), nil
	}

	workbook, err := export.Workbook(expenses)
	if err == nil {
		var buf bytes.Buffer
		if err = workbook.Write(&buf); err == nil {
			return buf.Bytes(), nil
		}
	}

	return nil, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
		Error: "error generating export",
	}, http.StatusInternalServerError)
}

// findStaged checks Redis for an export generated earlier today. Cache
// failures only cost a regeneration, so they are logged and swallowed.
func (c *ExportExpensesController) findStaged(userId primitive.ObjectID, now time.Time, format string) []byte {
	if c.RedisURL == "" {
		return nil
	}

	key := export_cache_repository.Key(userId, now, format)
	staged, err := export_cache_repository.Find(c.RedisURL, key)
	if err != nil {
		log.Printf("export cache lookup failed: %v", err)
		return nil
	}

	return staged
}

func (c *ExportExpensesController) stage(userId primitive.ObjectID, now time.Time, format string, data []byte) {
	if c.RedisURL == "" {
		return
	}

	key := export_cache_repository.Key(userId, now, format)
	if err := export_cache_repository.Save(c.RedisURL, key, data); err != nil {
		log.Printf("export cache store failed: %v", err)
	}
}
