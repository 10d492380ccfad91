// Package psqlbuilder - тонкая обёртка над squirrel с PostgreSQL плейсхолдерами ($1, $2, ...)
package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder общий StatementBuilder с форматом плейсхолдеров PostgreSQL
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select создает SELECT запрос с PostgreSQL плейсхолдерами
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert создает INSERT запрос с PostgreSQL плейсхолдерами
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update создает UPDATE запрос с PostgreSQL плейсхолдерами
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete создает DELETE запрос с PostgreSQL плейсхолдерами
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
