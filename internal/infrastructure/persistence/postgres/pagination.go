package postgres

import "gorm.io/gorm"

// paginate aplica paginação zero-based com defaults 0/10 e teto de 100
// itens por página
func paginate(query *gorm.DB, page, pageSize int) *gorm.DB {
	if page < 0 {
		page = 0
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}

	return query.Limit(pageSize).Offset(page * pageSize)
}
