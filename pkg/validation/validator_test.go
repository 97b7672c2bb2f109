package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Username string `form:"username" binding:"required,max=8"`
	Password string `form:"password" binding:"required"`
}

func TestToDetailsUsesFormTagNames(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(&sampleForm{Username: "", Password: ""})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "is required", details["username"])
	assert.Equal(t, "is required", details["password"])
}

func TestToDetailsFormatsMax(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(&sampleForm{Username: "waytoolongname", Password: "ok"})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be at most 8 characters long", details["username"])
	assert.NotContains(t, details, "password")
}

func TestToDetailsNilAndOpaqueErrors(t *testing.T) {
	assert.Nil(t, ToDetails(nil))

	details := ToDetails(assert.AnError)
	assert.Equal(t, "invalid form submission", details["form"])
}
