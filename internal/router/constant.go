package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// toolsDescription lists the tools offered to the model, one per line.
const toolsDescription = `- query_rag: للأسئلة المتعلقة باللوائح، الخطط الدراسية، توصيف المقررات، أو أي معلومات موجودة في المستندات الرسمية.
- analyze_progress: للأسئلة المتعلقة بسجل الطالب، المعدل التراكمي، المقررات المتبقية، أو المقررات القابلة للتسجيل.
- simulate_gpa: للأسئلة التي تتضمن محاكاة المعدل التراكمي أو حساب المعدل المتوقع.
- graph_query: للأسئلة المتعلقة بالمهارات، التخصصات، أو العلاقات بين المقررات (مثل: ما هي المهارات التي أكتسبها من مقرر X؟).
- general_chat: للأسئلة العامة، التحية، أو أي سؤال لا يندرج تحت الفئات السابقة.`

// PromptClassify takes the verbatim question.
const PromptClassify = `أنت نظام توجيه ذكي. مهمتك هي تحليل سؤال المستخدم وتحديد الأداة الأنسب للإجابة عليه من القائمة التالية.

الأدوات المتاحة:
` + toolsDescription + `

السؤال: "%s"

الرد يجب أن يكون اسم الأداة فقط، بدون أي شرح أو علامات ترقيم إضافية.
مثال: analyze_progress`
