package generation

import "time"

const (
	LogPrefixGenerate = "internal.generation.Generate"
)

// Sampling parameters sent with every generation call.
const (
	Temperature = 0.7
	TopP        = 0.9
	MaxTokens   = 500

	DefaultTimeout = 180 * time.Second
)

// Canned answers returned instead of errors.
const (
	MsgTimeout         = "انتهت مهلة الاتصال بالنموذج. يرجى المحاولة مرة أخرى أو تبسيط السؤال."
	MsgConnectionError = "خطأ في الاتصال بـ Ollama: %v. تأكد من أن Ollama يعمل وأن النموذج %s محمّل."
	MsgUnexpectedError = "حدث خطأ غير متوقع أثناء توليد الإجابة: %v"
	MsgEmptyAnswer     = "لم أجد إجابة محددة."
)
