package instance

// AppName is what the app will call itself. When embedding, overwrite it
// before calling Main().
var AppName = "devtask"
