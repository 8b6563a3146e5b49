package content

// schemaVersion is stamped onto every persisted document so future shape
// changes can migrate deliberately instead of relying on merge-over-defaults.
const schemaVersion = 1

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// DefaultDocument returns the hard-coded seed content. It doubles as the
// merge base when loading an older persisted snapshot: any section or field
// missing from the snapshot keeps its default.
func DefaultDocument() Document {
	return Document{
		SchemaVersion: schemaVersion,
		Hero: Hero{
			Title:           "שירותי מיזוג אוויר מקצועיים",
			Subtitle:        "התקנה, תיקון ותחזוקה של מזגנים בכפר סבא ובאזור המרכז והשרון",
			Description:     "מעל 10 שנות ניסיון בתחום המיזוג. שירות מקצועי, אמין ומהיר עם אלפי לקוחות מרוצים.",
			BackgroundImage: "https://images.pexels.com/photos/159358/air-conditioner-air-conditioning-cool-159358.jpeg",
		},
		About: AboutContent{
			Title:                      "אודות ירון פרסי",
			Subtitle:                   "מעל עשור של מקצועיות ואמינות",
			EstablishmentAndExperience: "ירון פרסי מתמחה בשירותי מיזוג אוויר מעל 10 שנים, עם דגש על איכות, מקצועיות ושירות אישי. אנו מספקים פתרונות מותאמים אישית לכל לקוח, החל מבתים פרטיים ועד עסקים גדולים באזור המרכז והשרון.",
			Approach:                   strPtr("הגישה השירותית שלנו מתמקדת בהבנת צרכי הלקוח לעומק, מתן פתרונות יעילים וחסכוניים, ועבודה נקייה ומסודרת. אנו מאמינים בשקיפות מלאה מול הלקוח לאורך כל התהליך."),
			Vision:                     strPtr("להיות חברת מיזוג האוויר המובילה באזור המרכז והשרון, המוכרת בזכות מקצועיות ללא פשרות, שירות לקוחות יוצא דופן, וחדשנות טכנולוגית מתמדת."),
			TeamImage:                  strPtr("https://via.placeholder.com/600x400.png?text=Team+Photo+Placeholder"),
			Certificates: []Certificate{
				{ID: "cert1", Name: "תעודת טכנאי מיזוג אוויר מוסמך", ImageURL: strPtr("https://via.placeholder.com/300x200.png?text=Certificate+1"), Link: strPtr("#")},
				{ID: "cert2", Name: "רישיון עסק בתוקף", ImageURL: strPtr("https://via.placeholder.com/300x200.png?text=License"), Link: strPtr("#")},
			},
			Experience: "10+",
			Customers:  "5000+",
			Projects:   "8000+",
			Warranty:   "12",
		},
		Contact: ContactContent{
			Phone:       "054-9740791",
			Email:       "yaron7533@gmail.com",
			Address:     "כפר סבא ואזור המרכז והשרון",
			Hours:       "ראשון - חמישי: 08:00 - 20:00",
			MapEmbedURL: strPtr("https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3380.0000000000005!2d34.900000000000006!3d32.183333000000004!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x0%3A0x0!2zMzLCsDEwJzYwLjAiTiAzNMKwMDAnMDAuMCJF!5e0!3m2!1sen!2sil!4v1678886400000!5m2!1sen!2sil"),
		},
		Social: SocialLinks{
			Whatsapp:  "https://wa.me/972549740791",
			Facebook:  "https://facebook.com/yaronparsi",
			Instagram: "https://instagram.com/yaronparsi",
			Email:     "mailto:yaron7533@gmail.com",
		},
		Services: []Service{
			{
				ID:              "1",
				TitleKey:        "services.installation.title",
				DescKey:         "services.installation.desc",
				DetailedDescKey: "services.installation.detailedDesc",
				Icon:            "Home",
				Color:           "from-sky-500 to-blue-600",
				HoverColor:      "hover:from-sky-600 hover:to-blue-700",
				Price:           strPtr("services.installation.price"),
				Image:           strPtr("https://via.placeholder.com/400x250.png?text=Service+Installation"),
			},
			{
				ID:              "2",
				TitleKey:        "services.repair.title",
				DescKey:         "services.repair.desc",
				DetailedDescKey: "services.repair.detailedDesc",
				Icon:            "Wrench",
				Color:           "from-emerald-500 to-teal-600",
				HoverColor:      "hover:from-emerald-600 hover:to-teal-700",
				Price:           strPtr("services.repair.price"),
				Image:           strPtr("https://via.placeholder.com/400x250.png?text=Service+Repair"),
			},
			{
				ID:              "3",
				TitleKey:        "services.maintenance.title",
				DescKey:         "services.maintenance.desc",
				DetailedDescKey: "services.maintenance.detailedDesc",
				Icon:            "Settings",
				Color:           "from-purple-500 to-indigo-600",
				HoverColor:      "hover:from-purple-600 hover:to-indigo-700",
				Price:           strPtr("services.maintenance.price"),
			},
			{
				ID:              "4",
				TitleKey:        "services.consultation.title",
				DescKey:         "services.consultation.desc",
				DetailedDescKey: "services.consultation.detailedDesc",
				Icon:            "MessageSquare",
				Color:           "from-orange-500 to-red-600",
				HoverColor:      "hover:from-orange-600 hover:to-red-700",
				Price:           strPtr("services.consultation.price"),
			},
			{
				ID:              "5",
				TitleKey:        "services.gas.title",
				DescKey:         "services.gas.desc",
				DetailedDescKey: "services.gas.detailedDesc",
				Icon:            "Zap",
				Color:           "from-yellow-500 to-orange-600",
				HoverColor:      "hover:from-yellow-600 hover:to-orange-700",
				Price:           strPtr("services.gas.price"),
			},
			{
				ID:              "6",
				TitleKey:        "services.emergency.title",
				DescKey:         "services.emergency.desc",
				DetailedDescKey: "services.emergency.detailedDesc",
				Icon:            "Phone",
				Color:           "from-red-500 to-pink-600",
				HoverColor:      "hover:from-red-600 hover:to-pink-700",
				Price:           strPtr("services.emergency.price"),
			},
		},
		Products: []Product{
			{
				ID:       "1",
				Name:     "מזגן אינוורטר 1 כ״ח",
				Category: "inverter",
				Price:    "₪2,500",
				Image:    "https://images.pexels.com/photos/159358/air-conditioner-air-conditioning-cool-159358.jpeg",
				Features: []string{"חיסכון בחשמל", "פעולה שקטה", "שלט רחוק", "מסנן אוויר"},
			},
		},
		Testimonials: []Testimonial{
			{
				ID:       "1",
				Name:     "דוד כהן",
				Location: "כפר סבא",
				Rating:   intPtr(5),
				Text:     "שירות מצוין! ירון הגיע במהירות, אבחן את הבעיה ותיקן את המזגן תוך שעה. מקצועי, אמין ובמחיר הוגן.",
				Avatar:   strPtr("https://images.pexels.com/photos/1587009/pexels-photo-1587009.jpeg"),
			},
			{
				ID:       "2",
				Name:     "שרה לוי",
				Location: "רעננה",
				Rating:   intPtr(4),
				Text:     "התקינו לי מזגן חדש, עבודה נקייה ומחיר טוב. ממליצה בחום!",
				Avatar:   strPtr("https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg"),
				VideoURL: strPtr("https://www.youtube.com/embed/dQw4w9WgXcQ"),
			},
			{
				ID:       "3",
				Name:     "משה כהן",
				Location: "הרצליה",
				Text:     "שירות מהיר ואדיב.",
				Avatar:   strPtr("https://images.pexels.com/photos/91227/pexels-photo-91227.jpeg"),
			},
		},
		Leads: []Lead{},
		AverageRating: &AverageRatingData{
			Value:       4.8,
			Source:      strPtr("Google Reviews"),
			ReviewCount: intPtr(152),
		},
		Posts: []Post{
			{
				ID:            "1",
				Slug:          "first-blog-post",
				Title:         "המדריך המלא לבחירת מזגן לבית",
				Author:        "ירון פרסי",
				Date:          "2024-05-15T10:00:00Z",
				FeaturedImage: strPtr("https://via.placeholder.com/800x400.png?text=Choosing+AC"),
				Summary:       "כל מה שצריך לדעת לפני שבוחרים מזגן חדש - גודל, סוג, טכנולוגיה וטיפים לחיסכון בחשמל.",
				Content:       "<p>בחירת מזגן היא החלטה חשובה שיכולה להשפיע על הנוחות שלכם ועל חשבון החשמל לאורך שנים. במדריך זה נעבור על כל השיקולים המרכזיים...</p><h3>סוגי מזגנים</h3><p>קיימים מספר סוגי מזגנים עיקריים: מזגן עילי, מיני מרכזי, מרכזי, רצפתי ונייד. לכל אחד יתרונות וחסרונות...</p>",
				Tags:          []string{"מיזוג אוויר", "מדריכים", "חיסכון בחשמל"},
			},
			{
				ID:            "2",
				Slug:          "common-ac-problems",
				Title:         "5 תקלות נפוצות במזגנים ואיך לזהות אותן",
				Author:        "צוות האתר",
				Date:          "2024-05-20T14:30:00Z",
				FeaturedImage: strPtr("https://via.placeholder.com/800x400.png?text=AC+Problems"),
				Summary:       "למדו לזהות תקלות נפוצות במזגן שלכם, מתי אפשר לטפל לבד ומתי חובה לקרוא לטכנאי.",
				Content:       "<p>מזגנים הם מכשירים מורכבים ולעיתים הם סובלים מתקלות. זיהוי מוקדם יכול לחסוך לכם כסף ואי נעימות...</p><ol><li>המזגן לא מקרר/מחמם</li><li>נזילת מים מהמזגן</li></ol>",
				Tags:          []string{"תקלות נפוצות", "תיקון מזגנים", "תחזוקה"},
			},
		},
		FAQs: []FAQItem{
			{
				ID:       "faq1",
				Question: "כל כמה זמן מומלץ לבצע תחזוקה למזגן?",
				Answer:   "מומלץ לבצע תחזוקה שוטפת למזגן לפחות פעם בשנה, כולל ניקוי פילטרים ובדיקת גז. תחזוקה נכונה מאריכה את חיי המזגן וחוסכת בחשמל.",
				Category: strPtr("תחזוקה"),
			},
			{
				ID:       "faq2",
				Question: "המזגן לא מקרר, מה יכולה להיות הסיבה?",
				Answer:   "סיבות נפוצות כוללות פילטרים סתומים, חוסר גז, בעיה בקבל או במדחס. יש לבדוק ראשית את הפילטרים, ובמידה והבעיה נמשכת לקרוא לטכנאי.",
				Category: strPtr("תקלות"),
			},
			{
				ID:       "faq3",
				Question: "האם אתם מתקינים מזגנים בכל הארץ?",
				Answer:   "אנו מתמקדים בעיקר באזור המרכז והשרון. ניתן ליצור קשר לבדיקת זמינות באזורים אחרים.",
				Category: strPtr("כללי"),
			},
		},
	}
}
