package sqldb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "?", Placeholder('?', 3))
	assert.Equal(t, "$3", Placeholder('$', 3))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "?, ?, ?", Placeholders('?', 3))
	assert.Equal(t, "$1, $2, $3", Placeholders('$', 3))
	assert.Equal(t, "$4, $5", Placeholders('$', 2, 4))
}

func TestReplaceStaticPlaceholders(t *testing.T) {
	sql := "SELECT * FROM reports WHERE org_id = ? AND number = ?"
	assert.Equal(t, sql, ReplaceStaticPlaceholders(sql, '?'))
	assert.Equal(t,
		"SELECT * FROM reports WHERE org_id = $1 AND number = $2",
		ReplaceStaticPlaceholders(sql, '$'))
}

func TestReplaceStaticPlaceholdersSkipsDynamic(t *testing.T) {
	sql := "SELECT * FROM attendees WHERE talk_id IN (??) AND name = ?"
	assert.Equal(t,
		"SELECT * FROM attendees WHERE talk_id IN (??) AND name = $1",
		ReplaceStaticPlaceholders(sql, '$'))
}
