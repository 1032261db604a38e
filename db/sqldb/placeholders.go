package sqldb

import (
	"fmt"
	"strconv"
	"strings"
)

var PlaceholderPrefixForDBType = map[string]byte{
	"mysql": '?',
	"pgsql": '$',
}

// Placeholder - single placeholder of the dialect. index matters only for
// ordinal dialects ($1, $2, ...).
func Placeholder(prefix byte, index int) string {
	if prefix == '?' || prefix == 0 {
		return "?"
	}
	return fmt.Sprintf("%c%d", prefix, index)
}

// Placeholders - comma-joined placeholder list for IN (...) clauses.
func Placeholders(prefix byte, length int, startIndex ...int) string {
	start := 1
	if len(startIndex) > 0 {
		start = startIndex[0]
	}
	parts := make([]string, length)
	for i := range parts {
		parts[i] = Placeholder(prefix, start+i)
	}
	return strings.Join(parts, ", ")
}

// ReplaceStaticPlaceholders rewrites standard `?` placeholders into the
// dialect's ordinal form. `??` (dynamic placeholders) pass through untouched.
func ReplaceStaticPlaceholders(sql string, prefix byte) string {
	if prefix == '?' || prefix == 0 {
		return sql
	}
	var builder strings.Builder
	builder.Grow(len(sql) + 8)
	cnt := 1
	i := 0
	for i < len(sql) {
		if sql[i] == '?' {
			// Do Not Touch Dynamic Placeholders '??'
			if i+1 < len(sql) && sql[i+1] == '?' {
				builder.WriteByte('?')
				builder.WriteByte('?')
				i += 2
				continue
			}
			builder.WriteByte(prefix)
			builder.WriteString(strconv.Itoa(cnt))
			cnt++
		} else {
			builder.WriteByte(sql[i])
		}
		i++
	}
	return builder.String()
}
