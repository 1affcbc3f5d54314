package model

import "testing"

func TestIsAdmin(t *testing.T) {
	if (User{Role: RoleUser}).IsAdmin() {
		t.Error("regular user classified as admin")
	}
	if !(User{Role: RoleAdmin}).IsAdmin() {
		t.Error("admin not recognized")
	}
}

func TestHasUserType(t *testing.T) {
	company := UserTypeCompany
	u := User{Role: RoleUser, UserType: &company}

	if !u.HasUserType(UserTypeCompany) {
		t.Error("matching type rejected")
	}
	if u.HasUserType(UserTypeEmployee) {
		t.Error("mismatching type accepted")
	}
	if (User{Role: RoleUser}).HasUserType(UserTypeCompany) {
		t.Error("nil user_type accepted")
	}
}
