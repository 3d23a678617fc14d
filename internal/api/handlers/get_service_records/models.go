package get_service_records

import (
	"strconv"
	"time"

	"github.com/m04kA/PGS-QueueService/internal/domain"
	"github.com/m04kA/PGS-QueueService/internal/service/records/models"
)

// parseRequest разбирает query-параметры в модель сервиса
func parseRequest(customerIDStr, petIDStr, groomerIDStr, startDateStr, endDateStr string) (*models.GetRecordsRequest, error) {
	req := &models.GetRecordsRequest{}

	if customerIDStr != "" {
		customerID, err := strconv.ParseInt(customerIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CustomerID = &customerID
	}

	if petIDStr != "" {
		petID, err := strconv.ParseInt(petIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.PetID = &petID
	}

	if groomerIDStr != "" {
		groomerID, err := strconv.ParseInt(groomerIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.GroomerID = &groomerID
	}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	return req, nil
}
