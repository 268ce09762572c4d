package service

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ondohomes/marketplace/internal/core/domain"
	"github.com/ondohomes/marketplace/internal/core/ports"
)

// workflow is one in-flight submission. Its mutex guards the draft against
// concurrent mutation from the caller and from upload completions.
type workflow struct {
	mu        sync.Mutex
	id        string
	ownerID   string
	editID    string // non-empty when editing an existing listing
	step      domain.Step
	draft     domain.Draft
	uploading map[int]struct{}
	nextSlot  int
	finished  bool
}

// SubmissionService runs listing submission workflows. A workflow exists
// only for the duration of one submission session; it is discarded on
// cancel and converted into a persisted listing on completion.
type SubmissionService struct {
	listings ports.ListingService
	session  ports.SessionService
	assist   ports.AssistService
	uploads  ports.UploadQueue
	logger   zerolog.Logger

	mu        sync.Mutex
	workflows map[string]*workflow
}

func NewSubmissionService(
	listings ports.ListingService,
	session ports.SessionService,
	assist ports.AssistService,
	uploads ports.UploadQueue,
	logger zerolog.Logger,
) *SubmissionService {
	return &SubmissionService{
		listings:  listings,
		session:   session,
		assist:    assist,
		uploads:   uploads,
		logger:    logger,
		workflows: make(map[string]*workflow),
	}
}

// Start opens a workflow for the signed-in user. New listings are gated by
// the membership quota; the gate is evaluated here, not at completion, so a
// tier change mid-flow is not re-checked.
func (s *SubmissionService) Start(ctx context.Context, input ports.StartSubmissionInput) (*ports.SubmissionView, error) {
	user, err := s.session.Restore(ctx)
	if err != nil {
		return nil, err
	}

	wf := &workflow{
		id:        uuid.NewString(),
		ownerID:   user.ID,
		step:      domain.StepBasics,
		uploading: make(map[int]struct{}),
	}

	if input.EditListingID != "" {
		listing, err := s.listings.Get(ctx, input.EditListingID)
		if err != nil {
			return nil, err
		}
		wf.editID = listing.ID
		wf.ownerID = listing.OwnerID
		wf.draft = domain.DraftFromListing(*listing)
	} else {
		active, err := s.listings.ActiveCountForOwner(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if !domain.CanCreateListing(user.Membership, active) {
			s.logger.Info().
				Str("user_id", user.ID).
				Str("tier", string(user.Membership)).
				Int("active", active).
				Msg("submission refused by quota")
			return nil, domain.ErrListingQuotaReached
		}
		wf.draft = domain.NewDraft()
	}

	s.mu.Lock()
	s.workflows[wf.id] = wf
	s.mu.Unlock()

	s.logger.Info().
		Str("submission_id", wf.id).
		Str("owner_id", wf.ownerID).
		Bool("editing", wf.editID != "").
		Msg("submission started")
	return wf.view(), nil
}

// lookup returns the active workflow for id.
func (s *SubmissionService) lookup(id string) (*workflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wf, ok := s.workflows[id]
	if !ok {
		return nil, domain.ErrSubmissionNotFound
	}
	return wf, nil
}

func (s *SubmissionService) Get(id string) (*ports.SubmissionView, error) {
	wf, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return wf.view(), nil
}

func (s *SubmissionService) UpdateDraft(id string, patch ports.DraftPatch) (*ports.SubmissionView, error) {
	wf, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	wf.mu.Lock()
	patch.Apply(&wf.draft)
	wf.mu.Unlock()
	return wf.view(), nil
}

// Next advances one step, gated on the current step's validity. Callers are
// expected to poll StepValid before offering the action; an invalid advance
// is a refusal, not a crash.
func (s *SubmissionService) Next(id string) (*ports.SubmissionView, error) {
	wf, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	wf.mu.Lock()
	defer wf.mu.Unlock()

	if !wf.draft.StepValid(wf.step) {
		return nil, domain.ErrStepInvalid
	}
	if wf.step < domain.StepMedia {
		wf.step++
	}
	return wf.viewLocked(), nil
}

// Back regresses one step; always allowed, floored at step one.
func (s *SubmissionService) Back(id string) (*ports.SubmissionView, error) {
	wf, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	wf.mu.Lock()
	defer wf.mu.Unlock()

	if wf.step > domain.StepBasics {
		wf.step--
	}
	return wf.viewLocked(), nil
}

// Cancel discards the workflow and its draft from any state. In-flight
// uploads keep running but their results are dropped.
func (s *SubmissionService) Cancel(id string) error {
	wf, err := s.lookup(id)
	if err != nil {
		return err
	}

	wf.mu.Lock()
	wf.finished = true
	wf.mu.Unlock()

	s.mu.Lock()
	delete(s.workflows, id)
	s.mu.Unlock()

	s.logger.Info().Str("submission_id", id).Msg("submission cancelled")
	return nil
}

// Complete finishes the workflow from a valid step four and writes the
// listing through the repository.
func (s *SubmissionService) Complete(ctx context.Context, id string) (*domain.Listing, error) {
	wf, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	// finished blocks further mutation while the write is in flight, but the
	// workflow stays registered until the write lands so a failed write
	// leaves the draft recoverable for a retry.
	wf.mu.Lock()
	if wf.finished {
		wf.mu.Unlock()
		return nil, domain.ErrSubmissionFinished
	}
	if wf.step != domain.StepMedia || !wf.draft.StepValid(domain.StepMedia) {
		wf.mu.Unlock()
		return nil, domain.ErrStepInvalid
	}
	wf.finished = true
	draft := wf.draft
	editID := wf.editID
	ownerID := wf.ownerID
	wf.mu.Unlock()

	listing, err := s.publish(ctx, ownerID, editID, draft)
	if err != nil {
		wf.mu.Lock()
		wf.finished = false
		wf.mu.Unlock()
		s.logger.Error().Err(err).Str("submission_id", id).Msg("publish failed, submission kept")
		return nil, err
	}

	s.mu.Lock()
	delete(s.workflows, id)
	s.mu.Unlock()

	s.logger.Info().
		Str("submission_id", id).
		Str("listing_id", listing.ID).
		Bool("editing", editID != "").
		Msg("submission published")
	return listing, nil
}

// publish writes the finished draft through the repository: create for a new
// submission, in-place update when editing.
func (s *SubmissionService) publish(ctx context.Context, ownerID, editID string, draft domain.Draft) (*domain.Listing, error) {
	if editID == "" {
		return s.listings.Create(ctx, ownerID, draft)
	}
	if err := s.listings.Update(ctx, editID, draftPatch(draft)); err != nil {
		return nil, err
	}
	return s.listings.Get(ctx, editID)
}

// AttachImage reserves a photo slot and queues an asynchronous upload. The
// finished reference is appended to the draft in upload-completion order,
// which is the order photos become visible, not the order they were picked.
func (s *SubmissionService) AttachImage(ctx context.Context, id, filename string, data []byte) (int, error) {
	wf, err := s.lookup(id)
	if err != nil {
		return 0, err
	}

	wf.mu.Lock()
	if wf.finished {
		wf.mu.Unlock()
		return 0, domain.ErrSubmissionFinished
	}
	slot := wf.nextSlot
	wf.nextSlot++
	wf.uploading[slot] = struct{}{}
	wf.mu.Unlock()

	s.uploads.Enqueue(ports.UploadJob{
		Name: filename,
		Data: data,
		Done: func(url string, err error) {
			wf.mu.Lock()
			defer wf.mu.Unlock()

			delete(wf.uploading, slot)
			if err != nil {
				s.logger.Warn().Err(err).
					Str("submission_id", id).
					Int("slot", slot).
					Msg("photo upload failed")
				return
			}
			if wf.finished {
				s.logger.Debug().Str("submission_id", id).Int("slot", slot).Msg("upload finished after submission ended, dropped")
				return
			}
			wf.draft.Images = append(wf.draft.Images, url)
		},
	})

	return slot, nil
}

// RemoveImage drops an already-uploaded photo by position.
func (s *SubmissionService) RemoveImage(id string, index int) (*ports.SubmissionView, error) {
	wf, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	wf.mu.Lock()
	defer wf.mu.Unlock()

	if index >= 0 && index < len(wf.draft.Images) {
		wf.draft.Images = append(wf.draft.Images[:index], wf.draft.Images[index+1:]...)
	}
	return wf.viewLocked(), nil
}

// SuggestDescription asks the collaborator for prose from the draft's
// structural facts. Like the product, it only runs once a title and rent
// exist; a fallback answer leaves the draft untouched so the canned text is
// never mistaken for a real suggestion.
func (s *SubmissionService) SuggestDescription(ctx context.Context, id string) (*ports.SubmissionView, error) {
	wf, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	wf.mu.Lock()
	facts := ports.StructuralFacts{
		Type:       string(wf.draft.Type),
		BHK:        wf.draft.BHK,
		Furnishing: string(wf.draft.Furnishing),
		Area:       wf.draft.BuiltUpArea,
		Rent:       wf.draft.MonthlyRent,
		Title:      wf.draft.Title,
	}
	wf.mu.Unlock()

	if facts.Title == "" || facts.Rent == "" {
		return wf.view(), nil
	}

	result := s.assist.GenerateDescription(ctx, facts)
	if result.Fallback {
		s.logger.Debug().Str("submission_id", id).Msg("description assist fell back, draft unchanged")
		return wf.view(), nil
	}

	wf.mu.Lock()
	wf.draft.Description = result.Text
	wf.mu.Unlock()
	return wf.view(), nil
}

// DescribeImage asks the collaborator to title and describe an uploaded
// photo. A usable suggestion overwrites title and description and jumps the
// flow to the financials step for review; an empty one changes nothing.
func (s *SubmissionService) DescribeImage(ctx context.Context, id string, imageIndex int) (*ports.SubmissionView, error) {
	wf, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	wf.mu.Lock()
	if imageIndex < 0 || imageIndex >= len(wf.draft.Images) {
		wf.mu.Unlock()
		return wf.view(), nil
	}
	imageRef := wf.draft.Images[imageIndex]
	wf.mu.Unlock()

	suggestion := s.assist.AnalyzeImage(ctx, imageRef)
	if suggestion.Empty() {
		s.logger.Debug().Str("submission_id", id).Msg("image analysis produced no suggestion")
		return wf.view(), nil
	}

	wf.mu.Lock()
	wf.draft.Title = suggestion.Title
	wf.draft.Description = suggestion.Description
	wf.step = domain.StepFinancials
	wf.mu.Unlock()
	return wf.view(), nil
}

// view snapshots the workflow for callers.
func (w *workflow) view() *ports.SubmissionView {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.viewLocked()
}

func (w *workflow) viewLocked() *ports.SubmissionView {
	uploading := make([]int, 0, len(w.uploading))
	for slot := range w.uploading {
		uploading = append(uploading, slot)
	}
	sort.Ints(uploading)

	draft := w.draft
	draft.Images = append([]string(nil), w.draft.Images...)

	return &ports.SubmissionView{
		ID:        w.id,
		Step:      w.step,
		StepValid: w.draft.StepValid(w.step),
		Editing:   w.editID != "",
		Draft:     draft,
		Uploading: uploading,
	}
}

// draftPatch expands a completed draft into a full listing patch for the
// edit flow. Identity and creation time stay untouched by construction.
func draftPatch(d domain.Draft) ports.ListingPatch {
	images := append([]string(nil), d.Images...)
	return ports.ListingPatch{
		Type:            &d.Type,
		Pincode:         &d.Pincode,
		Mobile:          &d.Mobile,
		PreferWhatsApp:  &d.PreferWhatsApp,
		AllowCalls:      &d.AllowCalls,
		AllowChat:       &d.AllowChat,
		BHK:             &d.BHK,
		Bathrooms:       &d.Bathrooms,
		Furnishing:      &d.Furnishing,
		BuiltUpArea:     &d.BuiltUpArea,
		CarpetArea:      &d.CarpetArea,
		PreferredTenant: &d.PreferredTenant,
		MonthlyRent:     &d.MonthlyRent,
		Advance:         &d.Advance,
		Negotiable:      &d.Negotiable,
		MaintenanceFee:  &d.MaintenanceFee,
		TotalFloors:     &d.TotalFloors,
		FloorNumber:     &d.FloorNumber,
		Parking:         &d.Parking,
		Title:           &d.Title,
		Description:     &d.Description,
		Images:          &images,
		IsActive:        &d.IsActive,
	}
}
