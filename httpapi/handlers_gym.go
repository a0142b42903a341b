package httpapi

import (
	"github.com/Rajat-Bansal3/Logit-Gym/auth"
	"github.com/Rajat-Bansal3/Logit-Gym/gym"
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

func (s *Server) handleCreateGym(c *fiber.Ctx) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return auth.ErrUnauthorized
	}

	payload := new(CreateGymPayload)
	if err := c.BodyParser(payload); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryBadInput, "failed to parse request body").
			WithCode(goerrors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return asValidationError(err)
	}

	record, err := s.gyms.Create(c.UserContext(), identity, gym.CreateInput{
		Name:    payload.Name,
		Address: payload.Address,
		Profile: payload.Profile.toModel(),
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Message: "Gym created successfully",
		Data:    fiber.Map{"gymId": record.ID.String()},
	})
}

func (s *Server) handleGetGym(c *fiber.Ctx) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return auth.ErrUnauthorized
	}

	gymID, err := parseGymID(c)
	if err != nil {
		return err
	}

	record, err := s.gyms.Get(c.UserContext(), identity, gymID)
	if err != nil {
		return err
	}

	return c.JSON(Response{
		Success: true,
		Message: "Gym fetched successfully",
		Data:    record,
	})
}

func (s *Server) handleUpdateGym(c *fiber.Ctx) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return auth.ErrUnauthorized
	}

	gymID, err := parseGymID(c)
	if err != nil {
		return err
	}

	payload := new(UpdateGymPayload)
	if err := c.BodyParser(payload); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryBadInput, "failed to parse request body").
			WithCode(goerrors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return asValidationError(err)
	}

	record, err := s.gyms.Update(c.UserContext(), identity, gymID, gym.UpdateInput{
		Name:    payload.Name,
		Address: payload.Address,
		Profile: payload.Profile.toModel(),
	})
	if err != nil {
		return err
	}

	return c.JSON(Response{
		Success: true,
		Message: "Gym updated successfully",
		Data:    record,
	})
}

func (s *Server) handleDeleteGym(c *fiber.Ctx) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return auth.ErrUnauthorized
	}

	gymID, err := parseGymID(c)
	if err != nil {
		return err
	}

	if err := s.gyms.Delete(c.UserContext(), identity, gymID); err != nil {
		return err
	}

	return c.JSON(Response{
		Success: true,
		Message: "Gym deleted successfully",
	})
}

func parseGymID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, goerrors.New("invalid gym id", goerrors.CategoryBadInput).
			WithCode(goerrors.CodeBadRequest).
			WithMetadata(map[string]any{"id": c.Params("id")})
	}
	return id, nil
}
