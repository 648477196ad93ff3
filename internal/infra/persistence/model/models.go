// Package model holds the GORM table structs of the relational store.
package model

// All lists every table model, in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&AddressModel{},
		&CommentModel{},
		&RatingModel{},
	}
}
