package validators

import (
	"strings"
	"testing"

	dto "taskhub.com/taskhub/internal/data_models"
)

func TestValidateRegisterUserRequest_JoinsAllFailures(t *testing.T) {
	err := ValidateRegisterUserRequest(&dto.RegisterUserRequest{
		Name:     "",
		Email:    "not-an-email",
		Password: "short",
	})
	if err == nil {
		t.Fatal("expected a validation error")
	}

	msg := err.Error()
	for _, want := range []string{
		"name is required",
		"email must be a valid email address",
		"password must be at least 6 characters",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected message to contain %q, got %q", want, msg)
		}
	}
}

func TestValidateRegisterUserRequest_PasswordRules(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"Secret1", true},
		{"secret1", false},
		{"SECRETX", false},
		{"Ab1", false},
		{"", false},
	}

	for _, c := range cases {
		err := ValidateRegisterUserRequest(&dto.RegisterUserRequest{
			Name:     "Test",
			Email:    "test@example.com",
			Password: c.password,
		})
		if c.ok && err != nil {
			t.Errorf("password %q: unexpected error %v", c.password, err)
		}
		if !c.ok && err == nil {
			t.Errorf("password %q: expected a validation error", c.password)
		}
	}
}

func TestValidateCreateTaskRequest(t *testing.T) {
	if err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{}); err == nil {
		t.Error("expected an error when name and projectId are missing")
	}

	err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{
		Name:      "Task",
		ProjectID: "p-1",
		Status:    "archived",
	})
	if err == nil {
		t.Error("expected an error for a status outside the enumeration")
	}

	err = ValidateCreateTaskRequest(&dto.CreateTaskRequest{
		Name:      "Task",
		ProjectID: "p-1",
		DueDate:   "25-12-2024",
	})
	if err == nil {
		t.Error("expected an error for a malformed due date")
	}

	err = ValidateCreateTaskRequest(&dto.CreateTaskRequest{
		Name:      "Task",
		ProjectID: "p-1",
		Status:    "in-progress",
		DueDate:   "2024-12-25",
	})
	if err != nil {
		t.Errorf("unexpected error for a valid request: %v", err)
	}
}

func TestValidateUpdateTaskRequest_EmptyPatchAllowed(t *testing.T) {
	if err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{}); err != nil {
		t.Errorf("an empty patch must be valid, got %v", err)
	}

	empty := ""
	if err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Name: &empty}); err == nil {
		t.Error("expected an error for an explicitly empty name")
	}
}

func TestValidateCombinedCreateRequest(t *testing.T) {
	err := ValidateCombinedCreateRequest(&dto.CombinedCreateRequest{
		User: dto.UserSeed{Name: "U", Email: "u@example.com", Password: "Secret1"},
		Task: dto.TaskSeed{Name: "T", Project: "p-1"},
	})
	if err != nil {
		t.Errorf("unexpected error for a valid request: %v", err)
	}

	err = ValidateCombinedCreateRequest(&dto.CombinedCreateRequest{
		User: dto.UserSeed{Email: "bad", Password: "x"},
		Task: dto.TaskSeed{},
	})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !strings.Contains(err.Error(), "task.project is required") {
		t.Errorf("expected the task.project failure to be reported, got %q", err.Error())
	}
}
