package model

type Medicine struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Stock int     `json:"stock"`
	Price float64 `json:"price"`
}

type CreateMedicineRequest struct {
	Name  string  `json:"name" binding:"required"`
	Stock int     `json:"stock" binding:"omitempty,gte=0"`
	Price float64 `json:"price" binding:"omitempty,gte=0"`
}
