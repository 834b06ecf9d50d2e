// @title           SkillGate API
// @version         1.0
// @description     API платформы кампусного рекрутинга: студенты, компании и наборы.
// @contact.name    SkillGate
// @contact.email   support@skillgate.com
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:5000
// @BasePath        /api/v1

package main

import "skillgate_backend/internal/app"

func main() {
	app.Run()
}
