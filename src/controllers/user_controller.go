package controllers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/prajwalshetti/Project-matrimony/src/lib"
	"github.com/prajwalshetti/Project-matrimony/src/models"
	"github.com/prajwalshetti/Project-matrimony/src/repositories"
	"github.com/prajwalshetti/Project-matrimony/src/services"
)

type UserController struct {
	users     *repositories.UserRepository
	profiles  *services.ProfileService
	storage   *lib.PhotoStorage
	jwtSecret string
	log       *zap.Logger
	validate  *validator.Validate
}

func NewUserController(users *repositories.UserRepository, profiles *services.ProfileService, storage *lib.PhotoStorage, jwtSecret string, log *zap.Logger) *UserController {
	return &UserController{
		users:     users,
		profiles:  profiles,
		storage:   storage,
		jwtSecret: jwtSecret,
		log:       log,
		validate:  validator.New(),
	}
}

type registerBody struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates a user with just name, email and password; the profile is
// filled in later through UpdateUser.
func (ctl *UserController) Register(c *fiber.Ctx) error {
	var body registerBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}
	if err := ctl.validate.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("All fields are required"))
	}

	existing, err := ctl.users.FindByEmail(c.Context(), body.Email)
	if err != nil {
		return errorResponse(c, ctl.log, err)
	}
	if existing != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("User already exists with the same email"))
	}

	hash, err := lib.HashPassword(body.Password)
	if err != nil {
		return errorResponse(c, ctl.log, err)
	}

	now := time.Now()
	user := &models.User{
		Id:        primitive.NewObjectID(),
		Name:      body.Name,
		Email:     body.Email,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := ctl.users.Insert(c.Context(), user); err != nil {
		return errorResponse(c, ctl.log, err)
	}

	user.Password = ""
	return c.Status(fiber.StatusOK).JSON(user)
}

// Login verifies the credentials and sets the session token cookie.
func (ctl *UserController) Login(c *fiber.Ctx) error {
	var body loginBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}
	if err := ctl.validate.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Email and password are required"))
	}

	user, err := ctl.users.FindByEmail(c.Context(), body.Email)
	if err != nil {
		return errorResponse(c, ctl.log, err)
	}
	if user == nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("User does not exist"))
	}

	if !lib.CheckPassword(user.Password, body.Password) {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Wrong Password"))
	}

	token, err := lib.GenerateJWT(user, ctl.jwtSecret)
	if err != nil {
		return errorResponse(c, ctl.log, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Expires:  time.Now().Add(time.Hour),
	})

	user.Password = ""
	return c.Status(fiber.StatusOK).JSON(user)
}

// Logout clears the session token cookie.
func (ctl *UserController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse("User logged out successfully"))
}

func (ctl *UserController) GetAllUsers(c *fiber.Ctx) error {
	users, err := ctl.users.FindAll(c.Context())
	if err != nil {
		return errorResponse(c, ctl.log, err)
	}

	for i := range users {
		users[i].Password = ""
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

func (ctl *UserController) GetUserById(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid user ID format"))
	}

	user, err := ctl.users.FindByID(c.Context(), id)
	if err != nil {
		return errorResponse(c, ctl.log, err)
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("No user found"))
	}

	user.Password = ""
	return c.Status(fiber.StatusOK).JSON(user)
}

func (ctl *UserController) GetLoggedinUser(c *fiber.Ctx) error {
	user := currentUser(c)
	return c.Status(fiber.StatusOK).JSON(user)
}

// updateUserBody covers the editable profile attributes. Payment fields and
// the cached completion verdict are owned elsewhere and cannot be written
// through this endpoint.
type updateUserBody struct {
	Email             *string    `json:"email" validate:"omitempty,email"`
	Name              *string    `json:"name"`
	LastName          *string    `json:"lastName"`
	DateOfBirth       *time.Time `json:"dateOfBirth"`
	Gender            *string    `json:"gender"`
	Height            *string    `json:"height"`
	PhoneNumber       *string    `json:"phoneNumber"`
	FoodPreference    *string    `json:"foodPreference"`
	OccupationType    *string    `json:"occupationType"`
	Occupation        *string    `json:"occupation"`
	Education         *string    `json:"education"`
	LanguagesKnown    *[]string  `json:"languagesKnown"`
	FathersName       *string    `json:"fathersName"`
	FathersOccupation *string    `json:"fathersOccupation"`
	MothersName       *string    `json:"mothersName"`
	MothersOccupation *string    `json:"mothersOccupation"`
	ResidentCountry   *string    `json:"residentCountry"`
	CurrentCity       *string    `json:"currentCity"`
	Hometown          *string    `json:"hometown"`
	Interests         *[]string  `json:"interests"`
	FuturePlans       *string    `json:"futurePlans"`
	Disabilities      *string    `json:"disabilities"`
	AboutMyself       *string    `json:"aboutMyself"`
	Gotra             *string    `json:"gotra"`
}

// UpdateUser applies a partial update to the authenticated user's profile.
// A changed email must not collide with another account.
func (ctl *UserController) UpdateUser(c *fiber.Ctx) error {
	var body updateUserBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}
	if err := ctl.validate.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid email"))
	}

	user := currentUser(c)

	if body.Email != nil && *body.Email != user.Email {
		existing, err := ctl.users.FindByEmail(c.Context(), *body.Email)
		if err != nil {
			return errorResponse(c, ctl.log, err)
		}
		if existing != nil {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Email already in use"))
		}
	}

	fields := bson.M{}
	setField(fields, "email", body.Email)
	setField(fields, "name", body.Name)
	setField(fields, "lastName", body.LastName)
	setField(fields, "dateOfBirth", body.DateOfBirth)
	setField(fields, "gender", body.Gender)
	setField(fields, "height", body.Height)
	setField(fields, "phoneNumber", body.PhoneNumber)
	setField(fields, "foodPreference", body.FoodPreference)
	setField(fields, "occupationType", body.OccupationType)
	setField(fields, "occupation", body.Occupation)
	setField(fields, "education", body.Education)
	setField(fields, "languagesKnown", body.LanguagesKnown)
	setField(fields, "fathersName", body.FathersName)
	setField(fields, "fathersOccupation", body.FathersOccupation)
	setField(fields, "mothersName", body.MothersName)
	setField(fields, "mothersOccupation", body.MothersOccupation)
	setField(fields, "residentCountry", body.ResidentCountry)
	setField(fields, "currentCity", body.CurrentCity)
	setField(fields, "hometown", body.Hometown)
	setField(fields, "interests", body.Interests)
	setField(fields, "futurePlans", body.FuturePlans)
	setField(fields, "disabilities", body.Disabilities)
	setField(fields, "aboutMyself", body.AboutMyself)
	setField(fields, "gotra", body.Gotra)

	if len(fields) > 0 {
		if err := ctl.users.UpdateFields(c.Context(), user.Id, fields); err != nil {
			return errorResponse(c, ctl.log, err)
		}
	}

	updated, err := ctl.users.FindByID(c.Context(), user.Id)
	if err != nil {
		return errorResponse(c, ctl.log, err)
	}
	if updated == nil {
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("User not found"))
	}

	updated.Password = ""
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User updated successfully",
		"user":    updated,
	})
}

// UploadProfilePhoto stores the multipart "profilePhoto" file in object
// storage and saves the resulting URL on the user.
func (ctl *UserController) UploadProfilePhoto(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("profilePhoto")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Profile photo file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errorResponse(c, ctl.log, err)
	}
	defer file.Close()

	user := currentUser(c)

	url, err := ctl.storage.UploadProfilePhoto(
		c.Context(),
		user.Id.Hex(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
		fileHeader.Size,
	)
	if err != nil {
		return errorResponse(c, ctl.log, err)
	}

	if err := ctl.users.SetProfilePhoto(c.Context(), user.Id, url); err != nil {
		return errorResponse(c, ctl.log, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      "Profile photo uploaded successfully",
		"profilePhoto": url,
	})
}

// GetProfileCompletion recomputes the completion report for the
// authenticated user.
func (ctl *UserController) GetProfileCompletion(c *fiber.Ctx) error {
	user := currentUser(c)

	report, err := ctl.profiles.Evaluate(c.Context(), user.Id)
	if err != nil {
		return errorResponse(c, ctl.log, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"profileCompletion": report,
	})
}

func setField[T any](fields bson.M, key string, value *T) {
	if value != nil {
		fields[key] = *value
	}
}
