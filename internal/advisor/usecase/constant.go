package usecase

// Log prefixes
const (
	LogPrefixHandleQuestion = "internal.advisor.usecase.HandleQuestion"
	LogPrefixRoute          = "internal.advisor.usecase.route"
	LogPrefixAsk            = "internal.advisor.usecase.Ask"
)

// Source labels
const (
	SourceFAQ      = "FAQ Database"
	SourceDemo     = "Demo Mode"
	SourceProgress = "Student Progress Service"
	SourceGraph    = "Graph DB"
	SourceGeneral  = "LLM (General)"
	SourceError    = "Error"
)

// Prompts
const (
	PromptRAG = `أنت "مرشدي الأكاديمي الذكي".
أجب على السؤال بدقة بناءً على المستندات التالية فقط.
إذا لم تجد الجواب، قل "لا أعرف".

المستندات:
%s

السؤال:
%s`

	PromptProgress = `أنت مرشد أكاديمي. بناءً على بيانات تقدم الطالب التالية، أجب على سؤاله.

بيانات الطالب:
- المعدل التراكمي الحالي: %s
- الساعات المكتملة: %d
- المقررات المتبقية: %d
- المقررات القابلة للتسجيل: %s
- المقررات المكتملة: %s

السؤال:
%s`

	PromptGeneral = `أنت "مرشدي الأكاديمي الذكي". أجب على السؤال التالي بأسلوب ودود ومفيد.
السؤال:
%s`
)

// Fixed answers
const (
	MsgDemoRestricted = "⚠️ الوضع التجريبي لا يدعم الوصول إلى بياناتك الشخصية. يرجى تسجيل الدخول بالبيانات الصحيحة للوصول إلى هذه الميزة."
	MsgProgressError  = "حدث خطأ أثناء تحليل تقدم الطالب: %v"
	MsgDocumentsError = "حدث خطأ أثناء البحث في المستندات: %v"
	MsgGraphError     = "حدث خطأ أثناء الاستعلام عن المهارات: %v"
	MsgSkillsTemplate = "المقرر %s يدرس المهارات التالية: %s"
	MsgRequestFailed  = "عذراً، حدث خطأ أثناء معالجة سؤالك: %v"
)

// Graph heuristic: both tokens must appear in the question.
const (
	graphSkillsToken = "مهارات"
	graphCourseToken = "مقرر"
	// Skills are always looked up for this course; the question text is not
	// parsed for a course code.
	graphExampleCourse = "CS101"
)

const listSeparator = ", "
