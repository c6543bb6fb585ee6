package graph

import (
	"fmt"
	"net/http"
)

// страница GraphiQL для ручной проверки API
const playgroundPage = `<!DOCTYPE html>
<html>
<head>
	<title>%s</title>
	<link rel="stylesheet" href="https://unpkg.com/graphiql/graphiql.min.css" />
</head>
<body style="margin: 0;">
	<div id="graphiql" style="height: 100vh;"></div>
	<script src="https://unpkg.com/react/umd/react.production.min.js"></script>
	<script src="https://unpkg.com/react-dom/umd/react-dom.production.min.js"></script>
	<script src="https://unpkg.com/graphiql/graphiql.min.js"></script>
	<script>
		const fetcher = GraphiQL.createFetcher({url: '%s'});
		ReactDOM.render(
			React.createElement(GraphiQL, {fetcher: fetcher}),
			document.getElementById('graphiql'),
		);
	</script>
</body>
</html>`

// PlaygroundHandler отдает страницу с тестовым интерфейсом для endpoint
func PlaygroundHandler(title, endpoint string) http.Handler {
	page := []byte(fmt.Sprintf(playgroundPage, title, endpoint))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	})
}
