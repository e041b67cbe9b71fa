package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"core/internal/catalog"
	"core/internal/dialog"
	"core/internal/format"
	"core/internal/matcher"
	"core/internal/model"
	"core/internal/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatService runs the full requirements-to-recommendation pipeline: one
// dialogue turn per call, and on the terminal turn matching plus formatting.
// The catalog is loaded once and read-only for the life of the service.
type ChatService struct {
	store      session.Store
	controller *dialog.Controller
	products   []model.Product
	market     *catalog.Marketplace
	topN       int
	log        *zap.Logger
}

// NewChatService creates the chat service. market may be nil when
// marketplace augmentation is disabled.
func NewChatService(
	store session.Store,
	controller *dialog.Controller,
	products []model.Product,
	market *catalog.Marketplace,
	topN int,
	log *zap.Logger,
) *ChatService {
	if topN <= 0 {
		topN = format.DefaultTopN
	}
	return &ChatService{
		store:      store,
		controller: controller,
		products:   products,
		market:     market,
		topN:       topN,
		log:        log,
	}
}

// Chat advances the conversation one turn. An empty conversation id starts a
// new conversation. On the terminal turn the reply gains the recommendation
// sections and the response carries the structured requirements and results.
func (s *ChatService) Chat(ctx context.Context, conversationID, message string) (*model.ChatResponse, error) {
	startTime := time.Now()

	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	sess, err := s.store.Get(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if sess == nil {
		sess = dialog.NewSession(conversationID)
	}

	result := s.controller.Advance(sess, message)

	resp := &model.ChatResponse{
		ConversationID: conversationID,
		Reply:          result.Reply,
		Completed:      result.Completed,
	}

	if result.Completed {
		results := s.recommend(ctx, result.Requirements)
		resp.Requirements = result.Requirements
		resp.Results = results
		resp.Reply = result.Reply + recommendationSections(results, s.topN)
		s.log.Info("dialogue cycle completed",
			zap.String("conversation_id", conversationID),
			zap.Int("results", len(results)),
			zap.Strings("priorities", result.Requirements.Priorities))
	}

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	resp.Took = time.Since(startTime).Milliseconds()
	return resp, nil
}

// recommend matches the catalog, augmented with best-effort marketplace
// candidates when that source is enabled.
func (s *ChatService) recommend(ctx context.Context, req *model.Requirements) []model.MatchResult {
	products := s.products
	if s.market != nil {
		if extra := s.market.Search(ctx, req); len(extra) > 0 {
			products = make([]model.Product, 0, len(s.products)+len(extra))
			products = append(products, s.products...)
			products = append(products, extra...)
		}
	}
	return matcher.Match(products, req)
}

// recommendationSections builds the markdown appended to a terminal reply:
// comparison table, top recommendation detail, installation guide and
// refinement prompt.
func recommendationSections(results []model.MatchResult, topN int) string {
	var sb strings.Builder
	sb.WriteString("\n\n### Recommended Products\n\n")
	sb.WriteString(format.FormatTable(results, topN))
	if len(results) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(format.FormatTopPick(results[0].Product))
	}
	return sb.String()
}

// Requirements returns the conversation's current and previous completed
// requirements records for sidebar-style display.
func (s *ChatService) Requirements(ctx context.Context, conversationID string) (*model.RequirementsResponse, error) {
	sess, err := s.store.Get(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	resp := &model.RequirementsResponse{ConversationID: conversationID}
	if sess != nil {
		resp.Current = sess.Current
		resp.Previous = sess.Previous
	}
	return resp, nil
}

// EndConversation discards the conversation's session.
func (s *ChatService) EndConversation(ctx context.Context, conversationID string) error {
	return s.store.Delete(ctx, conversationID)
}

// Recommend matches the catalog directly against a caller-assembled
// requirements record, bypassing the dialogue.
func (s *ChatService) Recommend(ctx context.Context, req *model.Requirements, topN int) *model.RecommendResponse {
	if topN <= 0 {
		topN = s.topN
	}
	results := s.recommend(ctx, req)
	return &model.RecommendResponse{
		Results: results,
		Total:   len(results),
		Table:   format.FormatTable(results, topN),
	}
}

// Compare renders the pairwise comparison of two catalog products by name.
func (s *ChatService) Compare(productA, productB string) (string, error) {
	a, ok := s.findProduct(productA)
	if !ok {
		return "", fmt.Errorf("product not found: %s", productA)
	}
	b, ok := s.findProduct(productB)
	if !ok {
		return "", fmt.Errorf("product not found: %s", productB)
	}
	return format.FormatPairwise(a, b), nil
}

// Products returns the loaded catalog.
func (s *ChatService) Products() []model.Product {
	return s.products
}

func (s *ChatService) findProduct(name string) (model.Product, bool) {
	for _, p := range s.products {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return model.Product{}, false
}
