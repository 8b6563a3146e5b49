package chat

import "strings"

// QuickReplies are the suggestion chips the frontend renders under the
// conversation.
var QuickReplies = []string{
	"מחירון שירותים",
	"זמני הגעה",
	"שירות חירום",
	"אחריות",
	"אזורי שירות",
}

const defaultReply = "תודה על הפנייה! לקבלת מענה מיידי, אנא התקשר: 054-9740791 או השאר הודעה בטופס הצור קשר באתר."

type cannedReply struct {
	keywords []string
	text     string
}

// checked in order, first keyword hit wins
var cannedReplies = []cannedReply{
	{
		keywords: []string{"מחיר", "עלות"},
		text:     "המחירים שלנו תחרותיים ומותאמים לכל תקציב. לקבלת הצעת מחיר מדויקת, אנא צור קשר בטלפון 054-9740791 או השאר פרטים וניצור קשר.",
	},
	{
		keywords: []string{"זמן", "הגעה"},
		text:     "בדרך כלל אנו מגיעים תוך 2-4 שעות. בשירותי חירום - תוך שעה. הזמן תלוי במיקום ובעומס. שירות זמין ראשון-חמישי 08:00-20:00.",
	},
	{
		keywords: []string{"חירום", "דחוף"},
		text:     "שירות חירום זמין ראשון-חמישי! התקשר עכשיו: 054-9740791 לשירות מיידי.",
	},
	{
		keywords: []string{"אחריות"},
		text:     "אנו נותנים אחריות מלאה: 12 חודשים על התקנות חדשות, 6 חודשים על תיקונים, 3 חודשים על תחזוקה.",
	},
	{
		keywords: []string{"אזור", "מיקום"},
		text:     "אנו משרתים את כל אזור המרכז והשרון: כפר סבא, רעננה, הרצליה, רמת השרון, גבעתיים, פתח תקווה ועוד.",
	},
}

func replyFor(userText string) string {
	lower := strings.ToLower(userText)
	for _, canned := range cannedReplies {
		for _, keyword := range canned.keywords {
			if strings.Contains(lower, keyword) {
				return canned.text
			}
		}
	}
	return defaultReply
}
