// Package validator builds declarative validation from small Rule values.
//
// Each rule constructor returns a Rule holding a Check func and the error to
// report; Apply evaluates all of them and aggregates failures into
// ValidationErrors, which implements error and can be rendered per field:
//
//	err := validator.Apply(
//	    validator.Required("name", req.Name),
//	    validator.ValidEmail("email", req.Email),
//	    validator.MinLen("password", req.Password, 8),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    details := verrs.Map() // {"email": ["must be a valid email address"]}
//	}
package validator
