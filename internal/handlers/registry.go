package handlers

// AppHandlers aggregates every route-owning handler for wiring.
type AppHandlers struct {
	Auth        *AuthHandler
	User        *UserHandler
	Project     *ProjectHandler
	Task        *TaskHandler
	Application *ApplicationHandler
	Message     *MessageHandler
	Payment     *PaymentHandler
	Admin       *AdminHandler
}
