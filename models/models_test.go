package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	absent := Absent()
	assert.True(t, absent.IsAbsent())
	assert.Equal(t, 0.0, absent.Value())
	assert.Equal(t, AbsentLabel, absent.String())

	zero := Numeric(0)
	assert.False(t, zero.IsAbsent())
	assert.NotEqual(t, absent, zero)

	assert.Equal(t, "87.5", Numeric(87.5).String())
}

func TestMarkJSON(t *testing.T) {
	data, err := json.Marshal([]Mark{Absent(), Numeric(90), Numeric(0)})
	require.NoError(t, err)
	assert.Equal(t, `["Absent",90,0]`, string(data))

	var marks []Mark
	require.NoError(t, json.Unmarshal(data, &marks))
	assert.Equal(t, []Mark{Absent(), Numeric(90), Numeric(0)}, marks)

	var m Mark
	assert.Error(t, json.Unmarshal([]byte(`"present"`), &m))
	assert.Error(t, json.Unmarshal([]byte(`true`), &m))
}

func TestStudentSetOrder(t *testing.T) {
	set := NewStudentSet()
	set.Set(StudentRecord{Name: "Zoe", SGPA: 1})
	set.Set(StudentRecord{Name: "Adam", SGPA: 2})
	set.Set(StudentRecord{Name: "Zoe", SGPA: 3})

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"Zoe", "Adam"}, set.Names())
	zoe, ok := set.Get("Zoe")
	require.True(t, ok)
	assert.Equal(t, 3.0, zoe.SGPA)

	_, ok = set.Get("Nobody")
	assert.False(t, ok)
}

func TestStudentSetNilAndZero(t *testing.T) {
	var nilSet *StudentSet
	assert.Equal(t, 0, nilSet.Len())
	assert.Empty(t, nilSet.Names())
	_, ok := nilSet.Get("x")
	assert.False(t, ok)

	var zero StudentSet
	zero.Set(StudentRecord{Name: "a"})
	assert.Equal(t, 1, zero.Len())
}

func TestStudentSetJSON(t *testing.T) {
	set := NewStudentSet()
	set.Set(StudentRecord{Name: "b", Marks: []Mark{Absent()}})
	set.Set(StudentRecord{Name: "a", Marks: []Mark{Numeric(50)}})

	data, err := json.Marshal(set)
	require.NoError(t, err)

	decoded := NewStudentSet()
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, []string{"b", "a"}, decoded.Names())

	empty, err := json.Marshal(NewStudentSet())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestRawTableCell(t *testing.T) {
	table := &RawTable{Columns: []string{"Name", "Math_marks"}}
	row := []string{"Alice"}
	assert.Equal(t, "Alice", table.Cell(row, 0))
	assert.Equal(t, "", table.Cell(row, 1))
	assert.Equal(t, "", table.Cell(row, -1))
}
