package handlers

import "github.com/gofiber/fiber/v2"

// RegisterRoutes wires every endpoint onto the app. Paths are part of the
// wire contract with the mobile client.
func RegisterRoutes(app *fiber.App, auth *AuthHandler, assets *AssetHandler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Server is running"})
	})
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	api.Post("/create/user", auth.CreateUser)
	api.Post("/verify/user", auth.VerifyUser)
	api.Post("/update/password", auth.UpdatePassword)
	api.Post("/send/confirmation/email", auth.SendConfirmationEmail)
	api.Post("/send/email/password/reset", auth.SendPasswordResetEmail)
	api.Post("/verify/email/code", auth.VerifyEmailCode)
	api.Post("/delete/user", assets.DeleteAccount)
	api.Post("/get/data", assets.GetData)
	api.Post("/delete/asset", assets.DeleteAssets)

	app.Post("/upload", assets.Upload)
	app.Post("/multiple/upload", assets.MultipleUpload)
	app.Post("/base64/image/upload", assets.Base64Upload)
	app.Delete("/delete", assets.DeleteFile)
	app.Delete("/multiple/delete", assets.MultipleDelete)
}
