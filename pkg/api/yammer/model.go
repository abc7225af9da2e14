package yammer

import "github.com/maggarwal/authgateway/pkg/api"

type User struct {
	ID          string `mapstructure:"id"`
	Name        string `mapstructure:"full_name"`
	Username    string `mapstructure:"name"`
	Email       string `mapstructure:"email"`
	MugshotURL  string `mapstructure:"mugshot_url"`
	NetworkName string `mapstructure:"network_name"`
}

func DecodeUser(raw string) (User, error) {
	user := User{}
	if err := api.DecodeFirst([]byte(raw), &user); err != nil {
		return User{}, err
	}

	return user, nil
}
