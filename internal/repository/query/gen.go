// Code generated by gorm.io/gen. DO NOT EDIT.
// Code generated by gorm.io/gen. DO NOT EDIT.
// Code generated by gorm.io/gen. DO NOT EDIT.

package query

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"gorm.io/gen"

	"gorm.io/plugin/dbresolver"
)

var (
	Q                  = new(Query)
	ActivityEvent      *activityEvent
	PaymentLink        *paymentLink
	Proposal           *proposal
	SocialLink         *socialLink
	Suggestion         *suggestion
	TravelHistoryEntry *travelHistoryEntry
	Trip               *trip
	TripCollaborator   *tripCollaborator
	TripImage          *tripImage
	TripLove           *tripLove
	UserProfile        *userProfile
)

func SetDefault(db *gorm.DB, opts ...gen.DOOption) {
	*Q = *Use(db, opts...)
	ActivityEvent = &Q.ActivityEvent
	PaymentLink = &Q.PaymentLink
	Proposal = &Q.Proposal
	SocialLink = &Q.SocialLink
	Suggestion = &Q.Suggestion
	TravelHistoryEntry = &Q.TravelHistoryEntry
	Trip = &Q.Trip
	TripCollaborator = &Q.TripCollaborator
	TripImage = &Q.TripImage
	TripLove = &Q.TripLove
	UserProfile = &Q.UserProfile
}

func Use(db *gorm.DB, opts ...gen.DOOption) *Query {
	return &Query{
		db:                 db,
		ActivityEvent:      newActivityEvent(db, opts...),
		PaymentLink:        newPaymentLink(db, opts...),
		Proposal:           newProposal(db, opts...),
		SocialLink:         newSocialLink(db, opts...),
		Suggestion:         newSuggestion(db, opts...),
		TravelHistoryEntry: newTravelHistoryEntry(db, opts...),
		Trip:               newTrip(db, opts...),
		TripCollaborator:   newTripCollaborator(db, opts...),
		TripImage:          newTripImage(db, opts...),
		TripLove:           newTripLove(db, opts...),
		UserProfile:        newUserProfile(db, opts...),
	}
}

type Query struct {
	db *gorm.DB

	ActivityEvent      activityEvent
	PaymentLink        paymentLink
	Proposal           proposal
	SocialLink         socialLink
	Suggestion         suggestion
	TravelHistoryEntry travelHistoryEntry
	Trip               trip
	TripCollaborator   tripCollaborator
	TripImage          tripImage
	TripLove           tripLove
	UserProfile        userProfile
}

func (q *Query) Available() bool { return q.db != nil }

func (q *Query) clone(db *gorm.DB) *Query {
	return &Query{
		db:                 db,
		ActivityEvent:      q.ActivityEvent.clone(db),
		PaymentLink:        q.PaymentLink.clone(db),
		Proposal:           q.Proposal.clone(db),
		SocialLink:         q.SocialLink.clone(db),
		Suggestion:         q.Suggestion.clone(db),
		TravelHistoryEntry: q.TravelHistoryEntry.clone(db),
		Trip:               q.Trip.clone(db),
		TripCollaborator:   q.TripCollaborator.clone(db),
		TripImage:          q.TripImage.clone(db),
		TripLove:           q.TripLove.clone(db),
		UserProfile:        q.UserProfile.clone(db),
	}
}

func (q *Query) ReadDB() *Query {
	return q.ReplaceDB(q.db.Clauses(dbresolver.Read))
}

func (q *Query) WriteDB() *Query {
	return q.ReplaceDB(q.db.Clauses(dbresolver.Write))
}

func (q *Query) ReplaceDB(db *gorm.DB) *Query {
	return &Query{
		db:                 db,
		ActivityEvent:      q.ActivityEvent.replaceDB(db),
		PaymentLink:        q.PaymentLink.replaceDB(db),
		Proposal:           q.Proposal.replaceDB(db),
		SocialLink:         q.SocialLink.replaceDB(db),
		Suggestion:         q.Suggestion.replaceDB(db),
		TravelHistoryEntry: q.TravelHistoryEntry.replaceDB(db),
		Trip:               q.Trip.replaceDB(db),
		TripCollaborator:   q.TripCollaborator.replaceDB(db),
		TripImage:          q.TripImage.replaceDB(db),
		TripLove:           q.TripLove.replaceDB(db),
		UserProfile:        q.UserProfile.replaceDB(db),
	}
}

type queryCtx struct {
	ActivityEvent      IActivityEventDo
	PaymentLink        IPaymentLinkDo
	Proposal           IProposalDo
	SocialLink         ISocialLinkDo
	Suggestion         ISuggestionDo
	TravelHistoryEntry ITravelHistoryEntryDo
	Trip               ITripDo
	TripCollaborator   ITripCollaboratorDo
	TripImage          ITripImageDo
	TripLove           ITripLoveDo
	UserProfile        IUserProfileDo
}

func (q *Query) WithContext(ctx context.Context) *queryCtx {
	return &queryCtx{
		ActivityEvent:      q.ActivityEvent.WithContext(ctx),
		PaymentLink:        q.PaymentLink.WithContext(ctx),
		Proposal:           q.Proposal.WithContext(ctx),
		SocialLink:         q.SocialLink.WithContext(ctx),
		Suggestion:         q.Suggestion.WithContext(ctx),
		TravelHistoryEntry: q.TravelHistoryEntry.WithContext(ctx),
		Trip:               q.Trip.WithContext(ctx),
		TripCollaborator:   q.TripCollaborator.WithContext(ctx),
		TripImage:          q.TripImage.WithContext(ctx),
		TripLove:           q.TripLove.WithContext(ctx),
		UserProfile:        q.UserProfile.WithContext(ctx),
	}
}

func (q *Query) Transaction(fc func(tx *Query) error, opts ...*sql.TxOptions) error {
	return q.db.Transaction(func(tx *gorm.DB) error { return fc(q.clone(tx)) }, opts...)
}

func (q *Query) Begin(opts ...*sql.TxOptions) *QueryTx {
	tx := q.db.Begin(opts...)
	return &QueryTx{Query: q.clone(tx), Error: tx.Error}
}

type QueryTx struct {
	*Query
	Error error
}

func (q *QueryTx) Commit() error {
	return q.db.Commit().Error
}

func (q *QueryTx) Rollback() error {
	return q.db.Rollback().Error
}

func (q *QueryTx) SavePoint(name string) error {
	return q.db.SavePoint(name).Error
}

func (q *QueryTx) RollbackTo(name string) error {
	return q.db.RollbackTo(name).Error
}
