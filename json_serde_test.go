package keeper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

type Smurf struct {
	Age  int    `json:"smurf_age"`
	Name string `json:"smurf_name"`
}

func TestJSONSerde_Serialize_Smurf(t *testing.T) {
	serde := NewJSONSerde()
	actual, err := serde.Serialize(&Smurf{Age: 245, Name: "Smurfette"})
	assert.Nil(t, err)
	expected := `{"smurf_age":245,"smurf_name":"Smurfette"}`
	assert.Equal(t, expected, string(actual))
}

func TestJSONSerde_Serialize_Unsupported(t *testing.T) {
	serde := NewJSONSerde()
	_, err := serde.Serialize(make(chan int))
	assert.NotNil(t, err)
}

func TestJSONSerde_Deserialize_Smurf(t *testing.T) {
	serde := NewJSONSerde()
	expected := map[string]interface{}{"smurf_age": float64(245), "smurf_name": "Smurfette"}
	actual, err := serde.Deserialize([]byte(`{"smurf_age":245,"smurf_name":"Smurfette"}`))
	assert.Nil(t, err)
	assert.Equal(t, expected, actual)
}

func TestJSONSerde_Deserialize_Scalars(t *testing.T) {
	serde := NewJSONSerde()
	for text, expected := range map[string]interface{}{
		`"shoes"`: "shoes",
		`42`:      float64(42),
		`true`:    true,
		`null`:    nil,
		`[1,"a"]`: []interface{}{float64(1), "a"},
	} {
		actual, err := serde.Deserialize([]byte(text))
		assert.Nil(t, err, text)
		assert.Equal(t, expected, actual, text)
	}
}

func TestJSONSerde_Deserialize_Invalid(t *testing.T) {
	serde := NewJSONSerde()
	_, err := serde.Deserialize([]byte(`{"smurf_age":`))
	assert.IsType(t, &json.SyntaxError{}, err)
}

func BenchmarkJSONSerde_Serialize(b *testing.B) {
	serde := NewJSONSerde()
	for i := 0; i < b.N; i++ {
		serde.Serialize(&Smurf{Age: 245, Name: "Smurfette"})
	}
}

func BenchmarkJSONSerde_Deserialize(b *testing.B) {
	serde := NewJSONSerde()
	for i := 0; i < b.N; i++ {
		serde.Deserialize([]byte(`{"smurf_age":245,"smurf_name":"Smurfette"}`))
	}
}
