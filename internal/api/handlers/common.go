package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/yoockh/konselor/internal/api/response"
	"github.com/yoockh/konselor/internal/utils"
)

// bindJSON decodes and validates the body. With allowEmpty an empty body is
// treated as {}; its binding tags are still checked.
func bindJSON(c *gin.Context, op string, dst any, allowEmpty bool) bool {
	err := c.ShouldBindJSON(dst)
	if err != nil && allowEmpty && errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(dst)
	}
	if err != nil {
		response.Error(c, utils.E(utils.CodeInvalidArgument, op, utils.MsgInvalidBody, err))
		return false
	}
	return true
}
