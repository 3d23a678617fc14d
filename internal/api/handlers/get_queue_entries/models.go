package get_queue_entries

import (
	"errors"
	"strconv"
	"time"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	"github.com/m04kA/PGS-QueueService/internal/service/queue/models"
)

var errMissingFilter = errors.New("either date or customerId is required")

// queryParams разобранные query-параметры запроса
type queryParams struct {
	byDate     *models.GetQueueRequest
	byCustomer *models.GetCustomerEntriesRequest
}

// parseQueryParams разбирает query-параметры
// Запрос идёт либо по дате (очередь дня), либо по клиенту (история)
func parseQueryParams(dateStr, customerIDStr, groomerIDStr, statusStr, includeCancelledStr string) (*queryParams, error) {
	var status *string
	if statusStr != "" {
		status = &statusStr
	}

	if customerIDStr != "" {
		customerID, err := strconv.ParseInt(customerIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		return &queryParams{
			byCustomer: &models.GetCustomerEntriesRequest{
				CustomerID: customerID,
				Status:     status,
			},
		}, nil
	}

	if dateStr == "" {
		return nil, errMissingFilter
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &models.GetQueueRequest{
		Date:   date,
		Status: status,
	}

	if groomerIDStr != "" {
		groomerID, err := strconv.ParseInt(groomerIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.GroomerID = &groomerID
	}

	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = includeCancelled
	}

	return &queryParams{byDate: req}, nil
}
