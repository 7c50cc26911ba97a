package dao

import "github.com/loviluz/remittance.api.loviluz.es/models"

// DAO is an interface for accessing dao from a backend store
type DAO interface {
	CreateRemittanceRunResource(runResource *models.RemittanceRunDB) error
	GetRemittanceRunResource(id string) (*models.RemittanceRunDB, error)
}
