// Package skistation предоставляет сборку и маршруты основного приложения станции.
package skistation

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/ski-station/internal/api/handlers/auth/login"
	"github.com/magabrotheeeer/ski-station/internal/api/handlers/auth/register"
	coursecreate "github.com/magabrotheeeer/ski-station/internal/api/handlers/course/create"
	courselist "github.com/magabrotheeeer/ski-station/internal/api/handlers/course/list"
	courseread "github.com/magabrotheeeer/ski-station/internal/api/handlers/course/read"
	courseupdate "github.com/magabrotheeeer/ski-station/internal/api/handlers/course/update"
	"github.com/magabrotheeeer/ski-station/internal/api/handlers/instructor/assigncourse"
	instructorcreate "github.com/magabrotheeeer/ski-station/internal/api/handlers/instructor/create"
	instructorlist "github.com/magabrotheeeer/ski-station/internal/api/handlers/instructor/list"
	instructorread "github.com/magabrotheeeer/ski-station/internal/api/handlers/instructor/read"
	pistecreate "github.com/magabrotheeeer/ski-station/internal/api/handlers/piste/create"
	pistelist "github.com/magabrotheeeer/ski-station/internal/api/handlers/piste/list"
	pisteread "github.com/magabrotheeeer/ski-station/internal/api/handlers/piste/read"
	pisteremove "github.com/magabrotheeeer/ski-station/internal/api/handlers/piste/remove"
	"github.com/magabrotheeeer/ski-station/internal/api/handlers/registration/addcourse"
	"github.com/magabrotheeeer/ski-station/internal/api/handlers/registration/addskier"
	"github.com/magabrotheeeer/ski-station/internal/api/handlers/registration/addskiercourse"
	registrationremove "github.com/magabrotheeeer/ski-station/internal/api/handlers/registration/remove"
	"github.com/magabrotheeeer/ski-station/internal/api/handlers/registration/weeks"
	"github.com/magabrotheeeer/ski-station/internal/api/handlers/skier/assignpiste"
	"github.com/magabrotheeeer/ski-station/internal/api/handlers/skier/assignsubscription"
	"github.com/magabrotheeeer/ski-station/internal/api/handlers/skier/bysubscriptiontype"
	skiercreate "github.com/magabrotheeeer/ski-station/internal/api/handlers/skier/create"
	skierlist "github.com/magabrotheeeer/ski-station/internal/api/handlers/skier/list"
	skierread "github.com/magabrotheeeer/ski-station/internal/api/handlers/skier/read"
	skierremove "github.com/magabrotheeeer/ski-station/internal/api/handlers/skier/remove"
	"github.com/magabrotheeeer/ski-station/internal/api/handlers/subscription/bydates"
	"github.com/magabrotheeeer/ski-station/internal/api/handlers/subscription/bytype"
	subscriptioncreate "github.com/magabrotheeeer/ski-station/internal/api/handlers/subscription/create"
	subscriptionlist "github.com/magabrotheeeer/ski-station/internal/api/handlers/subscription/list"
	subscriptionread "github.com/magabrotheeeer/ski-station/internal/api/handlers/subscription/read"
	"github.com/magabrotheeeer/ski-station/internal/api/handlers/subscription/renew"
	"github.com/magabrotheeeer/ski-station/internal/api/handlers/subscription/revenue"
	subscriptionupdate "github.com/magabrotheeeer/ski-station/internal/api/handlers/subscription/update"
	"github.com/magabrotheeeer/ski-station/internal/api/middlewarectx"
	authservice "github.com/magabrotheeeer/ski-station/internal/services/auth"
	courseservice "github.com/magabrotheeeer/ski-station/internal/services/course"
	instructorservice "github.com/magabrotheeeer/ski-station/internal/services/instructor"
	pisteservice "github.com/magabrotheeeer/ski-station/internal/services/piste"
	registrationservice "github.com/magabrotheeeer/ski-station/internal/services/registration"
	skierservice "github.com/magabrotheeeer/ski-station/internal/services/skier"
	subservice "github.com/magabrotheeeer/ski-station/internal/services/subscription"
)

// Services объединяет сервисы, необходимые маршрутам приложения.
type Services struct {
	Auth          *authservice.AuthService
	Subscriptions *subservice.SubscriptionService
	Skiers        *skierservice.SkierService
	Courses       *courseservice.CourseService
	Instructors   *instructorservice.InstructorService
	Registrations *registrationservice.RegistrationService
	Pistes        *pisteservice.PisteService
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, services *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, services.Auth).ServeHTTP)
		r.Post("/login", login.New(logger, services.Auth).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(logger, services.Auth))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Post("/subscriptions", subscriptioncreate.New(logger, services.Subscriptions).ServeHTTP)
			r.Get("/subscriptions/{id}", subscriptionread.New(logger, services.Subscriptions).ServeHTTP)
			r.Put("/subscriptions/{id}", subscriptionupdate.New(logger, services.Subscriptions).ServeHTTP)
			r.Post("/subscriptions/{id}/renew", renew.New(logger, services.Subscriptions).ServeHTTP)
			r.Get("/subscriptions/list", subscriptionlist.New(logger, services.Subscriptions).ServeHTTP)
			r.Get("/subscriptions/type/{type}", bytype.New(logger, services.Subscriptions).ServeHTTP)
			r.Post("/subscriptions/dates", bydates.New(logger, services.Subscriptions).ServeHTTP)
			r.Get("/subscriptions/revenue", revenue.New(logger, services.Subscriptions).ServeHTTP)

			r.Post("/skiers", skiercreate.New(logger, services.Skiers).ServeHTTP)
			r.Get("/skiers", skierlist.New(logger, services.Skiers).ServeHTTP)
			r.Get("/skiers/{id}", skierread.New(logger, services.Skiers).ServeHTTP)
			r.Delete("/skiers/{id}", skierremove.New(logger, services.Skiers).ServeHTTP)
			r.Put("/skiers/{id}/subscription/{subscription_id}", assignsubscription.New(logger, services.Skiers).ServeHTTP)
			r.Put("/skiers/{id}/piste/{piste_id}", assignpiste.New(logger, services.Skiers).ServeHTTP)
			r.Get("/skiers/subscription/{type}", bysubscriptiontype.New(logger, services.Skiers).ServeHTTP)

			r.Post("/courses", coursecreate.New(logger, services.Courses).ServeHTTP)
			r.Get("/courses", courselist.New(logger, services.Courses).ServeHTTP)
			r.Get("/courses/{id}", courseread.New(logger, services.Courses).ServeHTTP)
			r.Put("/courses/{id}", courseupdate.New(logger, services.Courses).ServeHTTP)

			r.Post("/instructors", instructorcreate.New(logger, services.Instructors).ServeHTTP)
			r.Get("/instructors", instructorlist.New(logger, services.Instructors).ServeHTTP)
			r.Get("/instructors/{id}", instructorread.New(logger, services.Instructors).ServeHTTP)
			r.Put("/instructors/{id}/course/{course_id}", assigncourse.New(logger, services.Instructors).ServeHTTP)

			r.Post("/registrations/skier/{skier_id}", addskier.New(logger, services.Registrations).ServeHTTP)
			r.Put("/registrations/{id}/course/{course_id}", addcourse.New(logger, services.Registrations).ServeHTTP)
			r.Post("/registrations/skier/{skier_id}/course/{course_id}", addskiercourse.New(logger, services.Registrations).ServeHTTP)
			r.Get("/registrations/instructor/{instructor_id}/support/{support}", weeks.New(logger, services.Registrations).ServeHTTP)
			r.Delete("/registrations/{id}", registrationremove.New(logger, services.Registrations).ServeHTTP)

			r.Post("/pistes", pistecreate.New(logger, services.Pistes).ServeHTTP)
			r.Get("/pistes", pistelist.New(logger, services.Pistes).ServeHTTP)
			r.Get("/pistes/{id}", pisteread.New(logger, services.Pistes).ServeHTTP)
			r.Delete("/pistes/{id}", pisteremove.New(logger, services.Pistes).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
