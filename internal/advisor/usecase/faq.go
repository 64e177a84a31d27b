package usecase

// faqAnswers is matched by exact string equality only.
var faqAnswers = map[string]string{
	"متى آخر يوم للحذف والإضافة؟":     "آخر يوم هو 20 فبراير 2025.",
	"ما هي درجة النجاح في مادة 101؟": "درجة C أو 60%.",
}

func lookupFAQ(question string) (string, bool) {
	answer, ok := faqAnswers[question]
	return answer, ok
}
