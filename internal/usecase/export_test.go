package usecase

import "time"

// SetClock подменяет текущее время в тестах
func (uc *ReservationUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

// SetCodeGenerator подменяет генератор кода бронирования в тестах
func (uc *ReservationUseCase) SetCodeGenerator(gen func() string) {
	uc.generateCode = gen
}

// SetClock подменяет время проверки токенов в тестах
func (uc *AuthUseCase) SetClock(now func() time.Time) {
	uc.now = now
}
