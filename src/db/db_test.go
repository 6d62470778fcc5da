package db

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaths(t *testing.T) {
	type CustomStatus string
	type S struct {
		I   int           `db:"I"`
		PI  *int          `db:"PI"`
		CS  CustomStatus  `db:"CS"`
		PCS *CustomStatus `db:"PCS"`
		B   bool          `db:"B"`
		PB  *bool         `db:"PB"`

		NoTag int
	}
	type Nested struct {
		S  S  `db:"S"`
		PS *S `db:"PS"`

		NoTag S
	}

	names, paths := getColumnNamesAndPaths(reflect.TypeOf(Nested{}), nil, nil)
	assert.Equal(t, []columnName{
		{"S", "I"}, {"S", "PI"},
		{"S", "CS"}, {"S", "PCS"},
		{"S", "B"}, {"S", "PB"},
		{"PS", "I"}, {"PS", "PI"},
		{"PS", "CS"}, {"PS", "PCS"},
		{"PS", "B"}, {"PS", "PB"},
	}, names)
	assert.Equal(t, []fieldPath{
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 0}, {1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5},
	}, paths)
	assert.True(t, len(names) == len(paths))

	testStruct := Nested{}
	for i, path := range paths {
		val, field := followPathThroughStructs(reflect.ValueOf(&testStruct), path)
		assert.True(t, val.IsValid())
		assert.True(t, strings.Contains(strings.Join(names[i], "."), field.Name))
	}
}

func TestCompileQuery(t *testing.T) {
	type Question struct {
		ID     int    `db:"id"`
		Text   string `db:"text"`
		Author string `db:"author"`
	}

	t.Run("plain columns", func(t *testing.T) {
		compiled := compileQuery(`SELECT $columns FROM questions`, reflect.TypeOf(Question{}))
		assert.Equal(t, `SELECT id, text, author FROM questions`, compiled.query)
	})
	t.Run("prefixed columns", func(t *testing.T) {
		compiled := compileQuery(`SELECT $columns{questions} FROM questions`, reflect.TypeOf(Question{}))
		assert.Equal(t, `SELECT questions.id, questions.text, questions.author FROM questions`, compiled.query)
	})
}

func TestQueryBuilder(t *testing.T) {
	var qb QueryBuilder
	qb.Add(`SELECT stuff FROM thing WHERE id = $? AND foo = $?`, 3, "bar")
	qb.Add(`AND baz = $?`, true)

	assert.Equal(t, "SELECT stuff FROM thing WHERE id = $1 AND foo = $2\nAND baz = $3\n", qb.String())
	assert.Equal(t, []interface{}{3, "bar", true}, qb.Args())

	assert.Panics(t, func() {
		qb.Add(`AND mismatched = $?`)
	})
}
