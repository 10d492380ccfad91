package models

import "github.com/haruyasu/booking-service/internal/domain"

// StoreResponse ответ с данными магазина
type StoreResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Address     *string `json:"address,omitempty"`
	Tel         *string `json:"tel,omitempty"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// StoreListResponse ответ со списком магазинов
type StoreListResponse struct {
	Stores []StoreResponse `json:"stores"`
}

// StaffResponse ответ с данными сотрудника
type StaffResponse struct {
	ID          int64   `json:"id"`
	StoreID     int64   `json:"storeId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// StaffListResponse ответ со списком сотрудников магазина
type StaffListResponse struct {
	StoreID int64           `json:"storeId"`
	Staff   []StaffResponse `json:"staff"`
}

// FromDomainStore конвертирует domain модель в DTO
func FromDomainStore(s *domain.Store) *StoreResponse {
	if s == nil {
		return nil
	}

	return &StoreResponse{
		ID:          s.ID,
		Name:        s.Name,
		Address:     s.Address,
		Tel:         s.Tel,
		Description: s.Description,
		ImageURL:    s.ImageURL,
	}
}

// FromDomainStoreList конвертирует список domain моделей в DTO
func FromDomainStoreList(stores []*domain.Store) *StoreListResponse {
	resp := &StoreListResponse{
		Stores: make([]StoreResponse, 0, len(stores)),
	}

	for _, s := range stores {
		if dto := FromDomainStore(s); dto != nil {
			resp.Stores = append(resp.Stores, *dto)
		}
	}

	return resp
}

// FromDomainStaff конвертирует domain модель в DTO
// UserID наружу не отдаётся: связь с аккаунтом - внутренняя деталь
func FromDomainStaff(s *domain.Staff) *StaffResponse {
	if s == nil {
		return nil
	}

	return &StaffResponse{
		ID:          s.ID,
		StoreID:     s.StoreID,
		Name:        s.Name,
		Description: s.Description,
		ImageURL:    s.ImageURL,
	}
}

// FromDomainStaffList конвертирует список domain моделей в DTO
func FromDomainStaffList(storeID int64, staff []*domain.Staff) *StaffListResponse {
	resp := &StaffListResponse{
		StoreID: storeID,
		Staff:   make([]StaffResponse, 0, len(staff)),
	}

	for _, s := range staff {
		if dto := FromDomainStaff(s); dto != nil {
			resp.Staff = append(resp.Staff, *dto)
		}
	}

	return resp
}
