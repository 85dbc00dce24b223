package proto

// Field numbers follow the order of wireFields.

type LoginRequest struct {
	Email    string
	Password string
}

func (x *LoginRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *LoginRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

type RegisterRequest struct {
	Firstname string
	Lastname  string
	Email     string
	Password  string
}

func (x *RegisterRequest) GetFirstname() string {
	if x != nil {
		return x.Firstname
	}
	return ""
}

func (x *RegisterRequest) GetLastname() string {
	if x != nil {
		return x.Lastname
	}
	return ""
}

func (x *RegisterRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *RegisterRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

// Token is returned by both Login and Register.
type Token struct {
	AccessToken string
}

func (x *Token) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

type GreetRequest struct {
	Message string
}

func (x *GreetRequest) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type GreetResponse struct {
	Message string
}

func (x *GreetResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *LoginRequest) wireFields() []*string { return []*string{&x.Email, &x.Password} }

func (x *RegisterRequest) wireFields() []*string {
	return []*string{&x.Firstname, &x.Lastname, &x.Email, &x.Password}
}

func (x *Token) wireFields() []*string         { return []*string{&x.AccessToken} }
func (x *GreetRequest) wireFields() []*string  { return []*string{&x.Message} }
func (x *GreetResponse) wireFields() []*string { return []*string{&x.Message} }
