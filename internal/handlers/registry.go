package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	DriveHandler       *DriveHandler
	ApplicationHandler *ApplicationHandler
	AdminHandler       *AdminHandler
}
