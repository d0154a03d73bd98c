package chat

import (
	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/entities"
	"NutriTrack-Backend/internal/utils"
	"NutriTrack-Backend/pkg/dish"
	"NutriTrack-Backend/pkg/intake"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"
	"gorm.io/gorm"
)

const systemInstruction = `You are a nutrition assistant for the NutriTrack app.
You help users find dishes, understand their nutrition, and log what they eat.
Use the search_dishes tool to look up dishes and the log_intake tool when the
user asks you to record something they ate. Keep answers short and practical.`

// Agent tool calls are bounded so a misbehaving model cannot loop forever.
const maxToolRounds = 5

type (
	ChatService interface {
		CreateConversation(ctx context.Context, userID string, title string) (domain.ConversationResponse, error)
		GetConversations(ctx context.Context, userID string) ([]domain.ConversationResponse, error)
		GetMessages(ctx context.Context, conversationID string, userID string) ([]domain.MessageResponse, error)
		SendMessage(ctx context.Context, conversationID string, req domain.SendMessageRequest, userID string) (domain.MessageResponse, error)
	}

	chatService struct {
		chatRepository ChatRepository
		dishService    dish.DishService
		intakeService  intake.IntakeService
		geminiClient   *genai.Client
		modelName      string
	}
)

func NewChatService(chatRepository ChatRepository, dishService dish.DishService, intakeService intake.IntakeService) ChatService {
	apiKey := utils.GetConfig("GEMINI_API_KEY")
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		log.Printf("Error creating Gemini client: %s\n", err)
	}

	modelName := utils.GetConfig("GEMINI_MODEL")
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	return &chatService{
		chatRepository: chatRepository,
		dishService:    dishService,
		intakeService:  intakeService,
		geminiClient:   client,
		modelName:      modelName,
	}
}

func (s *chatService) CreateConversation(ctx context.Context, userID string, title string) (domain.ConversationResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ConversationResponse{}, domain.ErrParseUUID
	}

	conversation := &entities.Conversation{
		ID:     uuid.New(),
		UserID: userUUID,
		Title:  title,
	}

	if err := s.chatRepository.CreateConversation(ctx, conversation); err != nil {
		return domain.ConversationResponse{}, err
	}

	return toConversationResponse(conversation), nil
}

func (s *chatService) GetConversations(ctx context.Context, userID string) ([]domain.ConversationResponse, error) {
	conversations, err := s.chatRepository.GetConversationsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ConversationResponse, 0, len(conversations))
	for i := range conversations {
		response = append(response, toConversationResponse(&conversations[i]))
	}
	return response, nil
}

func (s *chatService) GetMessages(ctx context.Context, conversationID string, userID string) ([]domain.MessageResponse, error) {
	if _, err := s.getOwnedConversation(ctx, conversationID, userID); err != nil {
		return nil, err
	}

	messages, err := s.chatRepository.GetMessagesByConversationID(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MessageResponse, 0, len(messages))
	for i := range messages {
		response = append(response, toMessageResponse(&messages[i]))
	}
	return response, nil
}

func (s *chatService) SendMessage(ctx context.Context, conversationID string, req domain.SendMessageRequest, userID string) (domain.MessageResponse, error) {
	conversation, err := s.getOwnedConversation(ctx, conversationID, userID)
	if err != nil {
		return domain.MessageResponse{}, err
	}

	userMessage := &entities.Message{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		Role:           entities.MessageRoleUser,
		Content:        req.Content,
	}
	if err := s.chatRepository.CreateMessage(ctx, userMessage); err != nil {
		return domain.MessageResponse{}, err
	}

	history, err := s.chatRepository.GetMessagesByConversationID(ctx, conversationID)
	if err != nil {
		return domain.MessageResponse{}, err
	}

	answer, err := s.runAgent(ctx, history, req.Content, userID)
	if err != nil {
		return domain.MessageResponse{}, err
	}

	assistantMessage := &entities.Message{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		Role:           entities.MessageRoleAssistant,
		Content:        answer,
	}
	if err := s.chatRepository.CreateMessage(ctx, assistantMessage); err != nil {
		return domain.MessageResponse{}, err
	}

	return toMessageResponse(assistantMessage), nil
}

func (s *chatService) runAgent(ctx context.Context, history []entities.Message, content string, userID string) (string, error) {
	if s.geminiClient == nil {
		return "", domain.ErrAgentUnavailable
	}

	model := s.geminiClient.GenerativeModel(s.modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}
	model.Tools = []*genai.Tool{agentTools()}

	session := model.StartChat()
	session.History = toGenaiHistory(history, content)

	resp, err := session.SendMessage(ctx, genai.Text(content))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	for round := 0; round < maxToolRounds; round++ {
		call := extractFunctionCall(resp)
		if call == nil {
			break
		}

		result := s.dispatchTool(ctx, call, userID)
		resp, err = session.SendMessage(ctx, genai.FunctionResponse{
			Name:     call.Name,
			Response: result,
		})
		if err != nil {
			return "", fmt.Errorf("gemini tool response failed: %w", err)
		}
	}

	return extractText(resp), nil
}

func agentTools() *genai.Tool {
	return &genai.Tool{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        "search_dishes",
				Description: "Search the dish catalog by name and return matching dishes with their nutrition per serving.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name": {
							Type:        genai.TypeString,
							Description: "Full or partial dish name to search for",
						},
					},
					Required: []string{"name"},
				},
			},
			{
				Name:        "log_intake",
				Description: "Record that the user ate a dish. The dish is matched by name.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"dish_name": {
							Type:        genai.TypeString,
							Description: "Exact name of the dish the user ate",
						},
						"portion_size": {
							Type:        genai.TypeNumber,
							Description: "Number of servings, defaults to 1",
						},
					},
					Required: []string{"dish_name"},
				},
			},
		},
	}
}

func (s *chatService) dispatchTool(ctx context.Context, call *genai.FunctionCall, userID string) map[string]any {
	switch call.Name {
	case "search_dishes":
		return s.toolSearchDishes(ctx, call.Args)
	case "log_intake":
		return s.toolLogIntake(ctx, call.Args, userID)
	default:
		return map[string]any{"error": fmt.Sprintf("unknown tool %q", call.Name)}
	}
}

func (s *chatService) toolSearchDishes(ctx context.Context, args map[string]any) map[string]any {
	name, _ := args["name"].(string)

	dishes, _, err := s.dishService.SearchDishes(ctx, domain.SearchDishesQuery{
		Name:  name,
		Page:  1,
		Limit: 5,
	})
	if err != nil {
		return map[string]any{"error": err.Error()}
	}

	results := make([]map[string]any, 0, len(dishes))
	for _, d := range dishes {
		entry := map[string]any{
			"name":    d.Name,
			"cuisine": d.Cuisine,
		}
		if d.Calories != nil {
			entry["calories"] = d.Calories.InexactFloat64()
		}
		if d.ProteinG != nil {
			entry["protein_g"] = d.ProteinG.InexactFloat64()
		}
		if d.CarbsG != nil {
			entry["carbs_g"] = d.CarbsG.InexactFloat64()
		}
		if d.FatsG != nil {
			entry["fats_g"] = d.FatsG.InexactFloat64()
		}
		results = append(results, entry)
	}

	return map[string]any{"dishes": results}
}

func (s *chatService) toolLogIntake(ctx context.Context, args map[string]any, userID string) map[string]any {
	dishName, _ := args["dish_name"].(string)

	req := domain.CreateIntakeByNameRequest{DishName: dishName}
	if portion, ok := args["portion_size"].(float64); ok && portion > 0 {
		p := decimal.NewFromFloat(portion)
		req.PortionSize = &p
	}

	logged, err := s.intakeService.CreateIntakeByName(ctx, req, userID)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}

	return map[string]any{
		"logged":       true,
		"dish_name":    logged.DishName,
		"portion_size": logged.PortionSize.InexactFloat64(),
		"intake_time":  logged.IntakeTime.Format("2006-01-02 15:04"),
	}
}

// toGenaiHistory maps stored messages to chat turns, excluding the message
// being sent now (it is already persisted before the agent runs).
func toGenaiHistory(messages []entities.Message, current string) []*genai.Content {
	history := make([]*genai.Content, 0, len(messages))
	for i := range messages {
		if i == len(messages)-1 && messages[i].Content == current && messages[i].Role == entities.MessageRoleUser {
			break
		}
		role := "user"
		if messages[i].Role == entities.MessageRoleAssistant {
			role = "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(messages[i].Content)},
		})
	}
	return history
}

func extractFunctionCall(resp *genai.GenerateContentResponse) *genai.FunctionCall {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if call, ok := part.(genai.FunctionCall); ok {
			return &call
		}
	}
	return nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}
	return out
}

func (s *chatService) getOwnedConversation(ctx context.Context, conversationID string, userID string) (*entities.Conversation, error) {
	conversation, err := s.chatRepository.GetConversationByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrConversationNotFound
		}
		return nil, err
	}

	if conversation.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}
	return conversation, nil
}

func toConversationResponse(conversation *entities.Conversation) domain.ConversationResponse {
	return domain.ConversationResponse{
		ID:        conversation.ID.String(),
		Title:     conversation.Title,
		CreatedAt: conversation.CreatedAt,
	}
}

func toMessageResponse(message *entities.Message) domain.MessageResponse {
	return domain.MessageResponse{
		ID:             message.ID.String(),
		ConversationID: message.ConversationID.String(),
		Role:           message.Role,
		Content:        message.Content,
		CreatedAt:      message.CreatedAt,
	}
}
