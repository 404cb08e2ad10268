package converter

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStrToUUID(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, id, StrToUUID(id.String()))
	assert.Equal(t, uuid.Nil, StrToUUID("not-a-merchant-id"))
	assert.Equal(t, uuid.Nil, StrToUUID(""))
}

func TestUUIDToStr(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, id.String(), UUIDToStr(id))
}
