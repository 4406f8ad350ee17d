package logger

// 统一的日志字段命名常量
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldTraceID 追踪 ID 字段
	FieldTraceID = "traceId"

	// FieldOwner 所有者 ID 字段
	FieldOwner = "ownerId"

	// FieldVault 学习仓库 ID 字段
	FieldVault = "vaultId"

	// FieldNote 笔记 ID 字段
	FieldNote = "noteId"

	// FieldURL 源地址字段
	FieldURL = "url"

	// FieldQuery 搜索关键字字段
	FieldQuery = "query"

	// FieldProvider 外部服务名称字段
	FieldProvider = "provider"

	// FieldMethod 方法名称字段
	FieldMethod = "method"

	// FieldDuration 耗时字段
	FieldDuration = "duration"

	// FieldError 错误信息字段
	FieldError = "error"
)
