package content

// Patch types carry partial updates for list items. A nil field means "leave
// as is"; a set field replaces the existing value, matching the shallow
// merge the admin dashboard performs when saving an edited item. Optional
// entity fields cannot be cleared through a patch, only replaced.

type ServicePatch struct {
	TitleKey        *string `json:"titleKey,omitempty"`
	DescKey         *string `json:"descKey,omitempty"`
	DetailedDescKey *string `json:"detailedDescKey,omitempty"`
	Icon            *string `json:"icon,omitempty"`
	Color           *string `json:"color,omitempty"`
	HoverColor      *string `json:"hoverColor,omitempty"`
	Price           *string `json:"price,omitempty"`
	Image           *string `json:"image,omitempty"`
}

func (p ServicePatch) apply(s *Service) {
	if p.TitleKey != nil {
		s.TitleKey = *p.TitleKey
	}
	if p.DescKey != nil {
		s.DescKey = *p.DescKey
	}
	if p.DetailedDescKey != nil {
		s.DetailedDescKey = *p.DetailedDescKey
	}
	if p.Icon != nil {
		s.Icon = *p.Icon
	}
	if p.Color != nil {
		s.Color = *p.Color
	}
	if p.HoverColor != nil {
		s.HoverColor = *p.HoverColor
	}
	if p.Price != nil {
		s.Price = p.Price
	}
	if p.Image != nil {
		s.Image = p.Image
	}
}

type ProductPatch struct {
	Name     *string  `json:"name,omitempty"`
	Category *string  `json:"category,omitempty"`
	Price    *string  `json:"price,omitempty"`
	Image    *string  `json:"image,omitempty"`
	Features []string `json:"features,omitempty"`
}

func (p ProductPatch) apply(item *Product) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Image != nil {
		item.Image = *p.Image
	}
	if p.Features != nil {
		item.Features = append([]string(nil), p.Features...)
	}
}

type TestimonialPatch struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
	Rating   *int    `json:"rating,omitempty"`
	Text     *string `json:"text,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	VideoURL *string `json:"videoUrl,omitempty"`
}

func (p TestimonialPatch) apply(item *Testimonial) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Location != nil {
		item.Location = *p.Location
	}
	if p.Rating != nil {
		item.Rating = p.Rating
	}
	if p.Text != nil {
		item.Text = *p.Text
	}
	if p.Avatar != nil {
		item.Avatar = p.Avatar
	}
	if p.VideoURL != nil {
		item.VideoURL = p.VideoURL
	}
}

type PostPatch struct {
	Slug          *string  `json:"slug,omitempty"`
	Title         *string  `json:"title,omitempty"`
	Author        *string  `json:"author,omitempty"`
	Date          *string  `json:"date,omitempty"`
	FeaturedImage *string  `json:"featuredImage,omitempty"`
	Summary       *string  `json:"summary,omitempty"`
	Content       *string  `json:"content,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

func (p PostPatch) apply(item *Post) {
	if p.Slug != nil {
		item.Slug = *p.Slug
	}
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Author != nil {
		item.Author = *p.Author
	}
	if p.Date != nil {
		item.Date = *p.Date
	}
	if p.FeaturedImage != nil {
		item.FeaturedImage = p.FeaturedImage
	}
	if p.Summary != nil {
		item.Summary = *p.Summary
	}
	if p.Content != nil {
		item.Content = *p.Content
	}
	if p.Tags != nil {
		item.Tags = append([]string(nil), p.Tags...)
	}
}

type FAQPatch struct {
	Question *string `json:"question,omitempty"`
	Answer   *string `json:"answer,omitempty"`
	Category *string `json:"category,omitempty"`
}

func (p FAQPatch) apply(item *FAQItem) {
	if p.Question != nil {
		item.Question = *p.Question
	}
	if p.Answer != nil {
		item.Answer = *p.Answer
	}
	if p.Category != nil {
		item.Category = p.Category
	}
}
