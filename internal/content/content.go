package content

// Document is the single aggregate holding every piece of editable site
// content. It is owned by the Store; consumers only ever see copies
// obtained through Snapshot. JSON tags follow the camelCase convention
// the frontend persisted under the `websiteContent` slot.
type Document struct {
	SchemaVersion int                `json:"schemaVersion,omitempty"`
	Hero          Hero               `json:"hero"`
	About         AboutContent       `json:"about"`
	Contact       ContactContent     `json:"contact"`
	Social        SocialLinks        `json:"social"`
	Services      []Service          `json:"services"`
	Products      []Product          `json:"products"`
	Testimonials  []Testimonial      `json:"testimonials"`
	Leads         []Lead             `json:"leads"`
	AverageRating *AverageRatingData `json:"averageRating,omitempty"`
	Posts         []Post             `json:"posts"`
	FAQs          []FAQItem          `json:"faqs"`
}

type Hero struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Description     string `json:"description"`
	BackgroundImage string `json:"backgroundImage"`
}

type Certificate struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl,omitempty"`
	Link     *string `json:"link,omitempty"`
}

// AboutContent keeps the legacy stat fields (experience/customers/projects/
// warranty) alongside the narrative ones so older persisted snapshots stay
// readable.
type AboutContent struct {
	Title                      string        `json:"title"`
	Subtitle                   string        `json:"subtitle"`
	EstablishmentAndExperience string        `json:"establishmentAndExperience"`
	Approach                   *string       `json:"approach,omitempty"`
	Vision                     *string       `json:"vision,omitempty"`
	TeamImage                  *string       `json:"teamImage,omitempty"`
	Certificates               []Certificate `json:"certificates,omitempty"`
	Experience                 string        `json:"experience"`
	Customers                  string        `json:"customers"`
	Projects                   string        `json:"projects"`
	Warranty                   string        `json:"warranty"`
}

type ContactContent struct {
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Address     string  `json:"address"`
	Hours       string  `json:"hours"`
	MapEmbedURL *string `json:"mapEmbedUrl,omitempty"`
}

type SocialLinks struct {
	Whatsapp  string `json:"whatsapp"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Email     string `json:"email"`
}

// Service text fields are translation keys, not rendered text — the
// frontend resolves them through the i18n table at render time.
type Service struct {
	ID              string  `json:"id"`
	TitleKey        string  `json:"titleKey"`
	DescKey         string  `json:"descKey"`
	DetailedDescKey string  `json:"detailedDescKey"`
	Icon            string  `json:"icon"`
	Color           string  `json:"color"`
	HoverColor      string  `json:"hoverColor"`
	Price           *string `json:"price,omitempty"`
	Image           *string `json:"image,omitempty"`
}

// Product.Category is a free-form filter tag, not a fixed enum.
type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    string   `json:"price"`
	Image    string   `json:"image"`
	Features []string `json:"features"`
}

type Testimonial struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Rating   *int    `json:"rating,omitempty"`
	Text     string  `json:"text"`
	Avatar   *string `json:"avatar,omitempty"`
	VideoURL *string `json:"videoUrl,omitempty"`
}

// Lead sources recognised across the site.
const (
	LeadSourceContactForm    = "Contact Form"
	LeadSourceChatBot        = "ChatBot"
	LeadSourceManual         = "Manual"
	LeadSourceServiceRequest = "Service Request Form"
)

// Lead is an append-only captured inquiry. ID and Timestamp are assigned
// by the store at creation; callers never supply them.
type Lead struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Email           *string `json:"email,omitempty"`
	Message         *string `json:"message,omitempty"`
	Source          string  `json:"source"`
	Timestamp       string  `json:"timestamp"`
	ResidentialArea *string `json:"residentialArea,omitempty"`
}

// NewLeadData carries the caller-supplied part of a lead.
type NewLeadData struct {
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Email           *string `json:"email,omitempty"`
	Message         *string `json:"message,omitempty"`
	Source          string  `json:"source"`
	ResidentialArea *string `json:"residentialArea,omitempty"`
}

// AverageRatingData is an editorial display value. It is deliberately not
// computed from testimonial ratings.
type AverageRatingData struct {
	Value       float64 `json:"value"`
	Source      *string `json:"source,omitempty"`
	ReviewCount *int    `json:"reviewCount,omitempty"`
}

// Post.Slug is the permalink key. Uniqueness is not enforced; lookup
// returns the first match in list order.
type Post struct {
	ID            string   `json:"id"`
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Date          string   `json:"date"`
	FeaturedImage *string  `json:"featuredImage,omitempty"`
	Summary       string   `json:"summary"`
	Content       string   `json:"content"`
	Tags          []string `json:"tags,omitempty"`
}

type FAQItem struct {
	ID       string  `json:"id"`
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Category *string `json:"category,omitempty"`
}

// FAQGroup is one category bucket produced by Store.GroupFAQs, in order of
// first appearance.
type FAQGroup struct {
	Category string    `json:"category"`
	Items    []FAQItem `json:"items"`
}
