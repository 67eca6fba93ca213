// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/google/uuid"

// Category labels transactions of a single type. Categories are seeded once
// with the default set and are read-only afterwards.
type Category struct {
	ID   uuid.UUID
	Name string
	Type TransactionType
}

// DefaultCategories returns the fixed default category set: four income,
// seven expense and four saving categories. IDs are stable so that seeded
// collections survive round-trips and transaction references stay valid.
func DefaultCategories() []*Category {
	return []*Category{
		{ID: uuid.MustParse("7b3f1c2a-9d14-4e06-8a14-2f5b9c1d0a01"), Name: "Salario", Type: TransactionTypeIncome},
		{ID: uuid.MustParse("7b3f1c2a-9d14-4e06-8a14-2f5b9c1d0a02"), Name: "Bonos", Type: TransactionTypeIncome},
		{ID: uuid.MustParse("7b3f1c2a-9d14-4e06-8a14-2f5b9c1d0a03"), Name: "Inversiones", Type: TransactionTypeIncome},
		{ID: uuid.MustParse("7b3f1c2a-9d14-4e06-8a14-2f5b9c1d0a04"), Name: "Otro Ingreso", Type: TransactionTypeIncome},
		{ID: uuid.MustParse("7b3f1c2a-9d14-4e06-8a14-2f5b9c1d0b01"), Name: "Impuestos y Servicios", Type: TransactionTypeExpense},
		{ID: uuid.MustParse("7b3f1c2a-9d14-4e06-8a14-2f5b9c1d0b02"), Name: "Tarjetas", Type: TransactionTypeExpense},
		{ID: uuid.MustParse("7b3f1c2a-9d14-4e06-8a14-2f5b9c1d0b03"), Name: "Educación", Type: TransactionTypeExpense},
		{ID: uuid.MustParse("7b3f1c2a-9d14-4e06-8a14-2f5b9c1d0b04"), Name: "Mesadas", Type: TransactionTypeExpense},
		{ID: uuid.MustParse("7b3f1c2a-9d14-4e06-8a14-2f5b9c1d0b05"), Name: "Salud", Type: TransactionTypeExpense},
		{ID: uuid.MustParse("7b3f1c2a-9d14-4e06-8a14-2f5b9c1d0b06"), Name: "Alimentacion", Type: TransactionTypeExpense},
		{ID: uuid.MustParse("7b3f1c2a-9d14-4e06-8a14-2f5b9c1d0b07"), Name: "Otros", Type: TransactionTypeExpense},
		{ID: uuid.MustParse("7b3f1c2a-9d14-4e06-8a14-2f5b9c1d0c01"), Name: "Plazo Fijo", Type: TransactionTypeSaving},
		{ID: uuid.MustParse("7b3f1c2a-9d14-4e06-8a14-2f5b9c1d0c02"), Name: "Compra Dólares", Type: TransactionTypeSaving},
		{ID: uuid.MustParse("7b3f1c2a-9d14-4e06-8a14-2f5b9c1d0c03"), Name: "Otras Inversiones", Type: TransactionTypeSaving},
		{ID: uuid.MustParse("7b3f1c2a-9d14-4e06-8a14-2f5b9c1d0c04"), Name: "Otro Ahorro", Type: TransactionTypeSaving},
	}
}
