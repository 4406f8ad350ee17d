package code

import "net/http"

// 成功码
var (
	Success       = NewSuss(1, lang{en: "Success", zh_cn: "成功"})
	SuccessCreate = NewSuss(2, lang{en: "Created", zh_cn: "创建成功"}).WithStatusCode(http.StatusCreated)
	SuccessUpdate = NewSuss(3, lang{en: "Updated", zh_cn: "更新成功"})
	SuccessDelete = NewSuss(4, lang{en: "Deleted", zh_cn: "删除成功"})
	Failed        = NewSuss(5, lang{en: "Failed", zh_cn: "失败"}).WithStatusCode(http.StatusServiceUnavailable)
)

// 通用错误码
var (
	ErrorServerInternal  = NewError(10000, lang{en: "Internal server error", zh_cn: "服务内部错误"})
	ErrorInvalidParams   = NewError(10001, lang{en: "Invalid request parameters", zh_cn: "入参错误"}).WithStatusCode(http.StatusBadRequest)
	ErrorNotFoundAPI     = NewError(10002, lang{en: "API not found", zh_cn: "找不到接口"}).WithStatusCode(http.StatusNotFound)
	ErrorTooManyRequests = NewError(10003, lang{en: "Too many requests", zh_cn: "请求过多"}).WithStatusCode(http.StatusTooManyRequests)
	ErrorDBQuery         = NewError(10004, lang{en: "Database query error", zh_cn: "数据库查询错误"})
)

// 业务错误码
var (
	ErrorVaultCreateFail  = NewError(20001, lang{en: "Failed to create vault", zh_cn: "创建学习仓库失败"})
	ErrorVaultNotFound    = NewError(20002, lang{en: "Vault not found", zh_cn: "学习仓库不存在"}).WithStatusCode(http.StatusNotFound)
	ErrorNoteCreateFail   = NewError(20101, lang{en: "Failed to create note", zh_cn: "创建笔记失败"})
	ErrorNoteNotFound     = NewError(20102, lang{en: "Note not found", zh_cn: "笔记不存在"}).WithStatusCode(http.StatusNotFound)
	ErrorAccountExist     = NewError(20201, lang{en: "Username already exists", zh_cn: "用户名已存在"}).WithStatusCode(http.StatusConflict)
	ErrorAccountNotFound  = NewError(20202, lang{en: "Account not found", zh_cn: "账号不存在"}).WithStatusCode(http.StatusNotFound)
	ErrorSearchProvider   = NewError(20301, lang{en: "Search provider request failed", zh_cn: "搜索服务请求失败"})
	ErrorMetadataProvider = NewError(20302, lang{en: "Metadata provider request failed", zh_cn: "元数据服务请求失败"})
)
