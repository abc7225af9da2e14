package facebook

import "github.com/maggarwal/authgateway/pkg/api"

type User struct {
	ID        string `mapstructure:"id"`
	Name      string `mapstructure:"name"`
	FirstName string `mapstructure:"first_name"`
	LastName  string `mapstructure:"last_name"`
	Email     string `mapstructure:"email"`
}

func DecodeUser(raw string) (User, error) {
	user := User{}
	if err := api.DecodeFirst([]byte(raw), &user); err != nil {
		return User{}, err
	}

	return user, nil
}
