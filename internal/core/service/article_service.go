package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pressroom/newsroom-api/internal/core/domain"
	"github.com/pressroom/newsroom-api/internal/core/ports"
)

// NotificationDedup abstracts the at-most-once guard for subscriber
// notifications (Redis). Re-approving an article re-stamps the row but must
// not mail the same readers again.
type NotificationDedup interface {
	AlreadyNotified(ctx context.Context, articleID int64) (bool, error)
	MarkNotified(ctx context.Context, articleID int64) error
}

type articleService struct {
	articles   ports.ArticleRepository
	users      ports.UserRepository
	publishers ports.PublisherRepository
	subs       ports.SubscriptionRepository
	dispatcher ports.NotificationDispatcher
	dedup      NotificationDedup
	log        zerolog.Logger
}

// NewArticleService returns an ArticleService implementation.
func NewArticleService(
	articles ports.ArticleRepository,
	users ports.UserRepository,
	publishers ports.PublisherRepository,
	subs ports.SubscriptionRepository,
	dispatcher ports.NotificationDispatcher,
	dedup NotificationDedup,
	log zerolog.Logger,
) ports.ArticleService {
	return &articleService{
		articles:   articles,
		users:      users,
		publishers: publishers,
		subs:       subs,
		dispatcher: dispatcher,
		dedup:      dedup,
		log:        log,
	}
}

// Create persists a new, unapproved article. The author's role is validated
// first so a non-journalist author never reaches the store.
func (s *articleService) Create(ctx context.Context, input ports.CreateArticleInput) (*domain.Article, error) {
	author, err := s.users.FindByID(ctx, input.AuthorID)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateAuthor(author); err != nil {
		return nil, err
	}
	if input.PublisherID != nil {
		if _, err := s.publishers.Get(ctx, *input.PublisherID); err != nil {
			return nil, err
		}
	}

	article := &domain.Article{
		Title:        input.Title,
		Content:      input.Content,
		JournalistID: input.AuthorID,
		PublisherID:  input.PublisherID,
	}
	created, err := s.articles.Create(ctx, article)
	if err != nil {
		s.log.Error().Err(err).Str("title", input.Title).Msg("failed to create article")
		return nil, err
	}

	s.log.Info().Int64("article_id", created.ID).Int64("journalist_id", input.AuthorID).Msg("article created")
	return created, nil
}

// Approve stamps the approval fields and fires the subscriber notification.
// There is no guard against re-approval: a second call re-stamps the approver
// and timestamp (last writer wins). The notification, however, goes out at
// most once per article.
func (s *articleService) Approve(ctx context.Context, articleID, editorID int64) (*domain.Article, error) {
	article, err := s.articles.Approve(ctx, articleID, editorID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("article_id", articleID).Int64("editor_id", editorID).Msg("article approved")

	// Best-effort side effect: failures are logged, never propagated, and
	// never roll back the approval above.
	s.notifySubscribers(ctx, article)

	return article, nil
}

func (s *articleService) notifySubscribers(ctx context.Context, article *domain.Article) {
	already, err := s.dedup.AlreadyNotified(ctx, article.ID)
	if err != nil {
		s.log.Warn().Err(err).Int64("article_id", article.ID).Msg("notification dedup check failed, notifying anyway")
	} else if already {
		s.log.Debug().Int64("article_id", article.ID).Msg("subscribers already notified, skipping")
		return
	}

	recipients, err := s.subs.SubscriberEmails(ctx, article.PublisherID, article.JournalistID)
	if err != nil {
		s.log.Warn().Err(err).Int64("article_id", article.ID).Msg("failed to resolve notification recipients")
		return
	}
	if len(recipients) == 0 {
		s.log.Debug().Int64("article_id", article.ID).Msg("no subscribed readers with email, skipping notification")
		return
	}

	if markErr := s.dedup.MarkNotified(ctx, article.ID); markErr != nil {
		s.log.Warn().Err(markErr).Int64("article_id", article.ID).Msg("failed to set notification dedup key")
	}

	s.dispatcher.Enqueue(ports.Notification{
		ArticleID:  article.ID,
		Subject:    "New approved article: " + article.Title,
		Body:       article.Excerpt(),
		Recipients: recipients,
	})

	s.log.Info().
		Int64("article_id", article.ID).
		Int("recipients", len(recipients)).
		Msg("notification enqueued")
}

// Feed returns the subscription-filtered feed for a reader. Any other role is
// rejected with ErrForbidden before touching the store.
func (s *articleService) Feed(ctx context.Context, input ports.FeedInput) ([]ports.ArticleView, error) {
	if input.Role != domain.RoleReader {
		return nil, domain.ErrForbidden
	}

	publisherIDs, err := s.subs.SubscribedPublisherIDs(ctx, input.ReaderID)
	if err != nil {
		return nil, err
	}
	journalistIDs, err := s.subs.SubscribedJournalistIDs(ctx, input.ReaderID)
	if err != nil {
		return nil, err
	}

	return s.articles.ListBySubscriptions(ctx, publisherIDs, journalistIDs)
}

func (s *articleService) ListApproved(ctx context.Context) ([]ports.ArticleView, error) {
	return s.articles.ListApproved(ctx)
}

func (s *articleService) ListPending(ctx context.Context) ([]ports.ArticleView, error) {
	return s.articles.ListPending(ctx)
}
