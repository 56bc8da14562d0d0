package services

// ServiceContainer bundles all services for handler wiring.
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	ProjectService     ProjectService
	TaskService        TaskService
	ApplicationService ApplicationService
	MessageService     MessageService
	PaymentService     PaymentService
	AdminService       AdminService
}
