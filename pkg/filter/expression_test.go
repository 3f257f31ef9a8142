package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/travigo/irishtransit/pkg/ctdf"
)

func TestExpression(t *testing.T) {
	assert := assert.New(t)

	trainPosition := &ctdf.TrainPosition{
		Status: ctdf.TrainStatusRunning,
		Code:   "E109",
		Location: ctdf.Location{
			Longitude: -6.24,
			Latitude:  53.35,
		},
	}

	tests := []struct {
		source string
		match  bool
	}{
		{`status == "running"`, true},
		{`status == "not_running"`, false},
		{`location.latitude > 53.3 && location.longitude < -6`, true},
		{`code startsWith "E"`, true},
		{`code in ["A1", "E109"]`, true},
		{`missing == nil`, true},
	}

	for _, test := range tests {
		expression, err := NewExpression(test.source)
		assert.NoError(err, test.source)

		matched, err := expression.Matches(trainPosition)
		assert.NoError(err, test.source)
		assert.Equal(test.match, matched, test.source)
	}
}

func TestExpressionCompileError(t *testing.T) {
	_, err := NewExpression(`status ==`)
	assert.Error(t, err)

	_, err = NewExpression(`1 + 2`)
	assert.Error(t, err)
}

func TestExpressionString(t *testing.T) {
	expression, err := NewExpression(`code == "E109"`)
	assert.NoError(t, err)
	assert.Equal(t, `code == "E109"`, expression.String())
}
