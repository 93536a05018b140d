package repositories

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"inventory-system/pkg/types"
)

// ListParams - общие параметры списочных запросов, собираемые из types.Filter.
// Allowed-списки защищают от подстановки произвольных колонок из query string.
type ListParams struct {
	Filter               map[string]interface{}
	AllowedFilterColumns []string
	Search               string
	SearchColumns        []string
	Sort                 map[string]string
	AllowedSortColumns   []string
	DefaultOrder         string
	Limit                uint64
	Offset               uint64
}

// ListParamsFromFilter переводит HTTP-фильтр в параметры запроса.
func ListParamsFromFilter(f types.Filter, allowedFilter, searchCols, allowedSort []string, defaultOrder string) ListParams {
	return ListParams{
		Filter:               f.Filter,
		AllowedFilterColumns: allowedFilter,
		Search:               f.Search,
		SearchColumns:        searchCols,
		Sort:                 f.Sort,
		AllowedSortColumns:   allowedSort,
		DefaultOrder:         defaultOrder,
		Limit:                uint64(f.Limit),
		Offset:               uint64(f.Offset),
	}
}

func contains(list []string, item string) bool {
	for _, val := range list {
		if strings.EqualFold(val, item) {
			return true
		}
	}
	return false
}

// applyConditions навешивает WHERE-условия фильтра и поиска на builder.
// Значение фильтра "1,2,3" трактуется как IN-список.
func applyConditions(builder sq.SelectBuilder, params ListParams) sq.SelectBuilder {
	for key, val := range params.Filter {
		if !contains(params.AllowedFilterColumns, key) {
			continue
		}
		if s, ok := val.(string); ok && strings.Contains(s, ",") {
			builder = builder.Where(sq.Eq{key: strings.Split(s, ",")})
			continue
		}
		builder = builder.Where(sq.Eq{key: val})
	}

	if params.Search != "" && len(params.SearchColumns) > 0 {
		var conditions []sq.Sqlizer
		pattern := fmt.Sprintf("%%%s%%", params.Search)
		for _, col := range params.SearchColumns {
			conditions = append(conditions, sq.Expr(fmt.Sprintf("%s ILIKE ?", col), pattern))
		}
		builder = builder.Where(sq.Or(conditions))
	}

	return builder
}

// applyOrder добавляет сортировку: первая разрешенная пара из Sort,
// иначе DefaultOrder.
func applyOrder(builder sq.SelectBuilder, params ListParams) sq.SelectBuilder {
	for field, direction := range params.Sort {
		if !contains(params.AllowedSortColumns, field) {
			continue
		}
		dir := "ASC"
		if strings.EqualFold(direction, "desc") {
			dir = "DESC"
		}
		return builder.OrderBy(fmt.Sprintf("%s %s", field, dir))
	}
	if params.DefaultOrder != "" {
		builder = builder.OrderBy(params.DefaultOrder)
	}
	return builder
}

func applyPagination(builder sq.SelectBuilder, params ListParams) sq.SelectBuilder {
	if params.Limit > 0 {
		builder = builder.Limit(params.Limit).Offset(params.Offset)
	}
	return builder
}
