package graph

// Schema - GraphQL схема API (schema-first, без кодогенерации)
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		login(email: String!, password: String!): AuthData!
		posts(page: Int): PostData!
		post(id: ID!): Post!
		user: User!
	}

	type Mutation {
		createUser(userInput: UserInputData!): User!
		createPost(postInput: PostInputData!): Post!
		updatePost(id: ID!, postInput: PostInputData!): Post!
		deletePost(id: ID!): Boolean!
		updateStatus(status: String!): User!
	}

	type Post {
		id: ID!
		title: String!
		content: String!
		imageUrl: String!
		creator: User!
		createdAt: String!
		updatedAt: String!
	}

	type User {
		id: ID!
		name: String!
		email: String!
		status: String!
		posts: [Post!]!
	}

	type AuthData {
		token: String!
		userId: String!
	}

	type PostData {
		posts: [Post!]!
		totalPosts: Int!
	}

	input UserInputData {
		email: String!
		name: String!
		password: String!
	}

	input PostInputData {
		title: String!
		content: String!
		imageUrl: String!
	}
`
