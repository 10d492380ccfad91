package create_reservation

import (
	"fmt"
	"time"

	"github.com/haruyasu/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, window domain.BusinessWindow) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.SlotStart.IsZero() {
		return fmt.Errorf("%w: slotStart is required", ErrInvalidInput)
	}

	if err := validateSlotStart(req.SlotStart, window); err != nil {
		return err
	}

	if err := validateContact(req); err != nil {
		return err
	}

	return nil
}

// validateSlotStart проверяет выравнивание на час и попадание в рабочее окно
func validateSlotStart(slotStart time.Time, window domain.BusinessWindow) error {
	if slotStart.Minute() != 0 || slotStart.Second() != 0 || slotStart.Nanosecond() != 0 {
		return ErrSlotNotAligned
	}

	if !window.ContainsHour(slotStart.Hour()) {
		return ErrSlotOutsideWindow
	}

	return nil
}

// validateContact проверяет наличие и длину контактных полей
func validateContact(req *Request) error {
	if req.FirstName == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	}
	if len(req.FirstName) > domain.MaxNameLength {
		return fmt.Errorf("%w: firstName exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.LastName == "" {
		return fmt.Errorf("%w: lastName is required", ErrInvalidInput)
	}
	if len(req.LastName) > domain.MaxNameLength {
		return fmt.Errorf("%w: lastName exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.Tel == "" {
		return fmt.Errorf("%w: tel is required", ErrInvalidInput)
	}
	if len(req.Tel) > domain.MaxTelLength {
		return fmt.Errorf("%w: tel exceeds %d characters", ErrInvalidInput, domain.MaxTelLength)
	}

	if req.Remarks != nil && len(*req.Remarks) > domain.MaxRemarksLength {
		return fmt.Errorf("%w: remarks exceed %d characters", ErrInvalidInput, domain.MaxRemarksLength)
	}

	return nil
}
