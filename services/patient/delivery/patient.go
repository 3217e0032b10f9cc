package delivery

import (
	"errors"
	"net/url"

	"stillwithyou/config"
	"stillwithyou/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type patientHandler struct {
	puc domain.PatientUseCase
}

func NewPatientDelivery(app *fiber.App, uc domain.PatientUseCase) {
	handler := &patientHandler{
		puc: uc,
	}

	route := app.Group("/patient")
	route.Post("/register", handler.deliveryRegisterPatient)
	route.Get("/get-all", handler.deliveryGetAllPatient)
	route.Get("/email/:email", handler.deliveryGetPatientByEmail)
	route.Get("/:id", handler.deliveryGetPatientByID)
	route.Put("/:id", handler.deliveryUpdatePatient)
	route.Delete("/:id", handler.deliveryDeletePatient)
}

func (ph *patientHandler) deliveryRegisterPatient(c *fiber.Ctx) error {
	var payload domain.RegisterPatientPayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "RegisterPatient")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	patient, err := ph.puc.Register(c.Context(), &payload)
	if err != nil {
		status := statusFromError(err)
		config.PrintLogInfo(status, "RegisterPatient")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to register patient",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(fiber.StatusCreated, "RegisterPatient")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Patient registered successfully",
		"data":    patient,
	})
}

func (ph *patientHandler) deliveryGetAllPatient(c *fiber.Ctx) error {
	patients, err := ph.puc.GetAll(c.Context())
	if err != nil {
		status := statusFromError(err)
		config.PrintLogInfo(status, "GetAllPatient")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve patients",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(fiber.StatusOK, "GetAllPatient")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Patients retrieved successfully",
		"data":    patients,
	})
}

func (ph *patientHandler) deliveryGetPatientByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "GetPatientByID")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid patient id",
			"error":   err.Error(),
		})
	}

	patient, err := ph.puc.GetByID(c.Context(), id)
	if err != nil {
		status := statusFromError(err)
		config.PrintLogInfo(status, "GetPatientByID")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve patient",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(fiber.StatusOK, "GetPatientByID")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Patient retrieved successfully",
		"data":    patient,
	})
}

func (ph *patientHandler) deliveryGetPatientByEmail(c *fiber.Ctx) error {
	// Route params arrive percent-encoded; "@" is often sent as %40.
	email, err := url.PathUnescape(c.Params("email"))
	if err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "GetPatientByEmail")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid email parameter",
			"error":   err.Error(),
		})
	}

	patient, err := ph.puc.GetByEmail(c.Context(), email)
	if err != nil {
		status := statusFromError(err)
		config.PrintLogInfo(status, "GetPatientByEmail")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve patient",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(fiber.StatusOK, "GetPatientByEmail")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Patient retrieved successfully",
		"data":    patient,
	})
}

func (ph *patientHandler) deliveryUpdatePatient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "UpdatePatient")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid patient id",
			"error":   err.Error(),
		})
	}

	var payload domain.UpdatePatientPayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "UpdatePatient")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	patient, err := ph.puc.Update(c.Context(), id, &payload)
	if err != nil {
		status := statusFromError(err)
		config.PrintLogInfo(status, "UpdatePatient")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update patient",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(fiber.StatusOK, "UpdatePatient")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Patient updated successfully",
		"data":    patient,
	})
}

func (ph *patientHandler) deliveryDeletePatient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "DeletePatient")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid patient id",
			"error":   err.Error(),
		})
	}

	if err := ph.puc.Delete(c.Context(), id); err != nil {
		status := statusFromError(err)
		config.PrintLogInfo(status, "DeletePatient")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete patient",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(fiber.StatusNoContent, "DeletePatient")
	return c.SendStatus(fiber.StatusNoContent)
}

// statusFromError maps domain errors to HTTP statuses: validation problems and
// duplicate emails are the caller's fault, a missing record is 404, anything
// else is an infrastructure failure.
func statusFromError(err error) int {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicateEmail):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrPatientNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
