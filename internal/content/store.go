package content

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/carmelyp/aircon-backend/internal/slot"
)

// contentSlot is the durable slot holding the serialized document.
const contentSlot = "websiteContent"

// LeadNotifier forwards a freshly captured lead to the outside world
// (webhook + notification logs). Implementations must swallow their own
// errors; the store never waits on or inspects the result.
type LeadNotifier interface {
	ForwardLead(lead Lead)
}

// Store owns the single content document. Every view reads from it and
// every admin/form mutation goes through it; the mutex serializes mutations
// so they are atomic with respect to each other. Each mutation updates the
// in-memory document synchronously and then writes the whole document to
// the durable slot; a failed slot write is logged and never rolls back the
// in-memory change.
type Store struct {
	mu       sync.RWMutex
	doc      Document
	slots    slot.Repository
	notifier LeadNotifier
	logger   *log.Logger

	now    func() time.Time
	lastID int64
}

// NewStore restores the persisted document over the hard-coded defaults.
// A missing or unparseable slot falls back to the defaults; sections added
// after a snapshot was written keep their default values.
func NewStore(slots slot.Repository, notifier LeadNotifier, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}

	s := &Store{
		slots:    slots,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	doc := DefaultDocument()
	raw, err := slots.Read(ctx, contentSlot)
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal([]byte(raw), &doc); jsonErr != nil {
			logger.Printf("content: persisted document is unreadable, using defaults: %v", jsonErr)
			doc = DefaultDocument()
		}
	case err == slot.ErrNotFound:
		// first run, defaults stay as-is
	default:
		logger.Printf("content: could not read persisted document, using defaults: %v", err)
	}

	// older snapshots predate these sections
	if doc.Leads == nil {
		doc.Leads = []Lead{}
	}
	if doc.Posts == nil {
		doc.Posts = []Post{}
	}
	if doc.FAQs == nil {
		doc.FAQs = []FAQItem{}
	}
	doc.SchemaVersion = schemaVersion

	s.doc = doc
	return s
}

// Snapshot returns a copy of the whole document. Callers never receive a
// mutable reference into the store.
func (s *Store) Snapshot() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneDocument(s.doc)
}

// persist writes the whole document to the durable slot. Called with the
// write lock held.
func (s *Store) persist() {
	raw, err := json.Marshal(s.doc)
	if err != nil {
		s.logger.Printf("content: could not serialize document: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.slots.Write(ctx, contentSlot, string(raw)); err != nil {
		// the mutation stands; there is no user-visible channel for this
		s.logger.Printf("content: persisting document failed: %v", err)
	}
}

// nextID derives a list-item id from the current time in milliseconds,
// bumping when two ids would land in the same millisecond.
func (s *Store) nextID() string {
	ms := s.now().UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms
	return strconv.FormatInt(ms, 10)
}

func newCertificateID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return "cert-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix
}

// Singleton sections.

func (s *Store) UpdateHero(h Hero) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Hero = h
	s.persist()
}

// UpdateAbout assigns ids to certificates that lack one. This runs on every
// about update, not only on initial load.
func (s *Store) UpdateAbout(a AboutContent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range a.Certificates {
		if a.Certificates[i].ID == "" {
			a.Certificates[i].ID = newCertificateID(s.now())
		}
	}
	s.doc.About = a
	s.persist()
}

func (s *Store) UpdateContact(c ContactContent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Contact = c
	s.persist()
}

func (s *Store) UpdateSocial(links SocialLinks) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Social = links
	s.persist()
}

func (s *Store) UpdateAverageRating(r AverageRatingData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.AverageRating = &r
	s.persist()
}

// List sections: add assigns a fresh id and appends; update shallow-merges
// a typed patch over the matching item; delete removes it. Updating or
// deleting a missing id leaves the list unchanged.

func (s *Store) AddService(item Service) Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.nextID()
	s.doc.Services = append(s.doc.Services, item)
	s.persist()
	return item
}

func (s *Store) UpdateService(id string, patch ServicePatch) (Service, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Services {
		if s.doc.Services[i].ID == id {
			patch.apply(&s.doc.Services[i])
			s.persist()
			return s.doc.Services[i], true
		}
	}
	return Service{}, false
}

func (s *Store) DeleteService(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Services = deleteByID(s.doc.Services, id, func(item Service) string { return item.ID })
	s.persist()
}

func (s *Store) AddProduct(item Product) Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.nextID()
	s.doc.Products = append(s.doc.Products, item)
	s.persist()
	return item
}

func (s *Store) UpdateProduct(id string, patch ProductPatch) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Products {
		if s.doc.Products[i].ID == id {
			patch.apply(&s.doc.Products[i])
			s.persist()
			return s.doc.Products[i], true
		}
	}
	return Product{}, false
}

func (s *Store) DeleteProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Products = deleteByID(s.doc.Products, id, func(item Product) string { return item.ID })
	s.persist()
}

func (s *Store) AddTestimonial(item Testimonial) Testimonial {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.nextID()
	s.doc.Testimonials = append(s.doc.Testimonials, item)
	s.persist()
	return item
}

func (s *Store) UpdateTestimonial(id string, patch TestimonialPatch) (Testimonial, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Testimonials {
		if s.doc.Testimonials[i].ID == id {
			patch.apply(&s.doc.Testimonials[i])
			s.persist()
			return s.doc.Testimonials[i], true
		}
	}
	return Testimonial{}, false
}

func (s *Store) DeleteTestimonial(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Testimonials = deleteByID(s.doc.Testimonials, id, func(item Testimonial) string { return item.ID })
	s.persist()
}

func (s *Store) AddPost(item Post) Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.nextID()
	s.doc.Posts = append(s.doc.Posts, item)
	s.persist()
	return item
}

func (s *Store) UpdatePost(id string, patch PostPatch) (Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Posts {
		if s.doc.Posts[i].ID == id {
			patch.apply(&s.doc.Posts[i])
			s.persist()
			return s.doc.Posts[i], true
		}
	}
	return Post{}, false
}

func (s *Store) DeletePost(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Posts = deleteByID(s.doc.Posts, id, func(item Post) string { return item.ID })
	s.persist()
}

func (s *Store) AddFAQ(item FAQItem) FAQItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.nextID()
	s.doc.FAQs = append(s.doc.FAQs, item)
	s.persist()
	return item
}

func (s *Store) UpdateFAQ(id string, patch FAQPatch) (FAQItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.FAQs {
		if s.doc.FAQs[i].ID == id {
			patch.apply(&s.doc.FAQs[i])
			s.persist()
			return s.doc.FAQs[i], true
		}
	}
	return FAQItem{}, false
}

func (s *Store) DeleteFAQ(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.FAQs = deleteByID(s.doc.FAQs, id, func(item FAQItem) string { return item.ID })
	s.persist()
}

func (s *Store) DeleteLead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Leads = deleteByID(s.doc.Leads, id, func(item Lead) string { return item.ID })
	s.persist()
}

// AddLead assigns id and timestamp, prepends the lead so the newest is
// always first, persists, and hands the lead to the notifier without
// waiting. Notification failure never reaches the caller and never rolls
// back the append.
func (s *Store) AddLead(data NewLeadData) Lead {
	s.mu.Lock()
	lead := Lead{
		ID:              s.nextID(),
		Name:            data.Name,
		Phone:           data.Phone,
		Email:           data.Email,
		Message:         data.Message,
		Source:          data.Source,
		Timestamp:       s.now().UTC().Format(time.RFC3339),
		ResidentialArea: data.ResidentialArea,
	}
	s.doc.Leads = append([]Lead{lead}, s.doc.Leads...)
	s.persist()
	s.mu.Unlock()

	if s.notifier != nil {
		go s.notifier.ForwardLead(lead)
	}
	return lead
}

// FindPostBySlug returns the first post with the given slug. Slugs are not
// guaranteed unique; first match in list order wins.
func (s *Store) FindPostBySlug(slug string) (Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.doc.Posts {
		if p.Slug == slug {
			return clonePost(p), true
		}
	}
	return Post{}, false
}

// GroupFAQs buckets the FAQ list by category in order of first appearance.
// Items without a category land in the defaultCategory bucket.
func (s *Store) GroupFAQs(defaultCategory string) []FAQGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := make([]FAQGroup, 0)
	index := make(map[string]int)
	for _, item := range s.doc.FAQs {
		category := defaultCategory
		if item.Category != nil && *item.Category != "" {
			category = *item.Category
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, FAQGroup{Category: category, Items: []FAQItem{}})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

func deleteByID[T any](items []T, id string, idOf func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func clonePost(p Post) Post {
	p.Tags = cloneSlice(p.Tags)
	return p
}

func cloneDocument(d Document) Document {
	out := d
	out.Services = cloneSlice(d.Services)
	out.Testimonials = cloneSlice(d.Testimonials)
	out.Leads = cloneSlice(d.Leads)
	out.FAQs = cloneSlice(d.FAQs)
	out.About.Certificates = cloneSlice(d.About.Certificates)

	out.Products = cloneSlice(d.Products)
	for i := range out.Products {
		out.Products[i].Features = cloneSlice(out.Products[i].Features)
	}
	out.Posts = cloneSlice(d.Posts)
	for i := range out.Posts {
		out.Posts[i].Tags = cloneSlice(out.Posts[i].Tags)
	}
	if d.AverageRating != nil {
		rating := *d.AverageRating
		out.AverageRating = &rating
	}
	return out
}
