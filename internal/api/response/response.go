package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 是通用的 API 响应结构体
type Response struct {
	Code    int         `json:"code"`    // 业务状态码，0 代表成功
	Data    interface{} `json:"data"`    // 响应数据主体
	Message string      `json:"message"` // 状态信息或错误信息
}

// PagingData 列表数据
type PagingData struct {
	List  interface{} `json:"list"`
	Total int64       `json:"total"`
}

const (
	CodeSuccess           = 0
	CodeNotFound          = 404
	CodeInternal          = 500
	CodeMissingPreviewURL = 4001 // 没有预览地址
	CodeUnsupportedFormat = 4002 // 流格式无法识别
)

func Success(c *gin.Context, data interface{}, msg string) {
	if msg == "" {
		msg = "操作成功"
	}
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: msg,
		Data:    data,
	})
}

func Fail(c *gin.Context, code int, msg string) {
	if code == CodeSuccess {
		code = CodeInternal // 避免业务错误码和成功码冲突
	}
	if msg == "" {
		msg = "failed"
	}
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: msg,
		Data:    nil,
	})
}

func Ok(c *gin.Context) {
	Success(c, nil, "success")
}

func OkWithMsg(c *gin.Context, msg string) {
	Success(c, nil, msg)
}

func OkWithData(c *gin.Context, data interface{}) {
	Success(c, data, "success")
}

func OkWithList(c *gin.Context, list interface{}, total int64) {
	Success(c, PagingData{
		List:  list,
		Total: total,
	}, "success")
}

// Error 快捷失败响应
func Error(c *gin.Context, msg string) {
	Fail(c, CodeInternal, msg)
}

func NotFound(c *gin.Context, msg string) {
	Fail(c, CodeNotFound, msg)
}
