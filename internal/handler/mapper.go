package handler

import (
	"github.com/bagdasarian/kanban-board/internal/domain"
)

func httpRegistrationToDomain(req RegistrationRequest) domain.Registration {
	return domain.Registration{
		Fullname:         req.Fullname,
		Email:            req.Email,
		Password:         req.Password,
		RepeatedPassword: req.RepeatedPassword,
	}
}

func domainSessionToHTTP(session *domain.Session) AuthResponse {
	return AuthResponse{
		Token:    session.Token,
		Fullname: session.User.Fullname,
		Email:    session.User.Email,
		UserID:   session.User.ID,
	}
}

func httpBoardPatchToDomain(req BoardPatchRequest) domain.BoardPatch {
	return domain.BoardPatch{
		Title:     req.Title,
		MemberIDs: req.Members,
	}
}

func httpTaskToDomain(req TaskRequest) domain.TaskInput {
	input := domain.TaskInput{
		BoardID:     req.Board,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		AssigneeID:  req.AssigneeID,
		ReviewerID:  req.ReviewerID,
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		input.Priority = &priority
	}
	return input
}

func httpTaskPatchToDomain(req TaskPatchRequest) domain.TaskPatch {
	patch := domain.TaskPatch{
		BoardID:     req.Board,
		Title:       req.Title,
		Description: domain.OptionalString{Set: req.Description.Set, Value: req.Description.Value},
		DueDate:     req.DueDate,
		AssigneeID:  domain.OptionalID{Set: req.AssigneeID.Set, Value: req.AssigneeID.Value},
		ReviewerID:  domain.OptionalID{Set: req.ReviewerID.Set, Value: req.ReviewerID.Value},
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		patch.Status = &status
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		patch.Priority = &priority
	}
	return patch
}
