package advance_status

import (
	"fmt"

	"github.com/m04kA/PGS-QueueService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.EntryID <= 0 {
		return fmt.Errorf("%w: entryID must be positive", ErrInvalidInput)
	}

	if req.TargetStatus == "" {
		return fmt.Errorf("%w: target status is required", ErrInvalidInput)
	}

	if req.DepositAmount != nil && *req.DepositAmount < 0 {
		return fmt.Errorf("%w: deposit amount must not be negative", ErrInvalidInput)
	}

	if req.CheckInWeight != nil && *req.CheckInWeight <= 0 {
		return fmt.Errorf("%w: check-in weight must be positive", ErrInvalidInput)
	}

	if len(req.Services) > domain.MaxServicesPerEntry {
		return fmt.Errorf("%w: too many services selected", ErrInvalidInput)
	}

	for _, img := range req.Images {
		if img.ImageData == "" {
			return fmt.Errorf("%w: image data must not be empty", ErrInvalidInput)
		}
	}

	return nil
}
